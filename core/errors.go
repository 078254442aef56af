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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidDestination indicates a Destination failed validation.
	ErrInvalidDestination = errors.New("invalid destination")

	// ErrInvalidPackage indicates a Package failed validation.
	ErrInvalidPackage = errors.New("invalid package")

	// ErrInvalidPreference indicates a Preference failed validation.
	ErrInvalidPreference = errors.New("invalid preference")

	// ErrMissingID indicates a record has no identifier.
	ErrMissingID = errors.New("identifier is required")

	// ErrEmptyName indicates the Name field is empty.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrMissingDestinationRef indicates a package has no destination identifier.
	ErrMissingDestinationRef = errors.New("destination identifier is required")

	// ErrNegativeNights indicates a package has a negative trip length.
	ErrNegativeNights = errors.New("nights cannot be negative")

	// ErrNegativeDuration indicates a preference has a negative desired duration.
	ErrNegativeDuration = errors.New("duration cannot be negative")
)
