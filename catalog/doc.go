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


// Package catalog defines read and write access to the travel catalog.
//
// A catalog holds two collections, destinations and packages, supplied
// verbatim to the recommender. Two backends implement the Store interface:
//
//   - catalog/jsonfile: reads the collections from JSON files on every call
//   - catalog/badger: serves a catalog previously imported into BadgerDB
//
// The JSON source is authoritative for the "collection not found" and
// "malformed collection" failure conditions; both propagate to the caller
// and are fatal for that invocation. Everything schema-related is loose by
// contract: all non-identifier fields are optional and default to their
// zero values.
package catalog
