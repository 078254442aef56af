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

import "fmt"

// ValidateDestination validates a Destination according to domain rules.
//
// Validation rules:
//   - Id must be set (sources assign content-based IDs before validation)
//   - Name must not be empty
//
// NOT validated (catalog schema is loose, per the data contract):
//   - Country, Activities, Description (may be empty)
//   - Climate (unknown values simply never match a preference)
func ValidateDestination(dest *Destination) error {
	if dest == nil {
		return fmt.Errorf("%w: destination is nil", ErrInvalidDestination)
	}

	if dest.Id == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidDestination, ErrMissingID)
	}

	if dest.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDestination, ErrEmptyName)
	}

	return nil
}

// ValidatePackage validates a Package according to domain rules.
//
// Validation rules:
//   - Id must be set
//   - DestinationId must be set (whether it resolves is checked at
//     recommendation time; a dangling reference is not a validation error)
//   - Nights must be non-negative
//
// NOT validated:
//   - Price (absence is legal)
//   - Budget (unknown values simply never match a preference)
//   - Vector (populated by the ingest pipeline, may be empty)
func ValidatePackage(pkg *Package) error {
	if pkg == nil {
		return fmt.Errorf("%w: package is nil", ErrInvalidPackage)
	}

	if pkg.Id == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidPackage, ErrMissingID)
	}

	if pkg.DestinationId == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidPackage, ErrMissingDestinationRef)
	}

	if pkg.Nights < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidPackage, ErrNegativeNights)
	}

	return nil
}

// ValidatePreference validates a Preference according to domain rules.
func ValidatePreference(pref *Preference) error {
	if pref == nil {
		return fmt.Errorf("%w: preference is nil", ErrInvalidPreference)
	}

	if pref.DurationDays < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidPreference, ErrNegativeDuration)
	}

	return nil
}
