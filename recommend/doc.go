// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package recommend matches travel packages against traveler preferences.
//
// The Recommender type implements a two-stage pipeline:
//
//   - An optional semantic pre-ranking stage orders candidates by embedding
//     similarity to a query synthesized from the preference. When no
//     embedding service is available the stage degrades to identity order;
//     downstream logic is unaffected either way.
//   - A deterministic heuristic scoring stage rates each finalist on budget,
//     climate, activity overlap and duration closeness.
//
// Results are sorted by score (ties broken by price) and truncated to the
// requested size. The pipeline is synchronous and never mutates its inputs.
package recommend
