// Copyright (c) 2025, The gtcalc Authors.  All rights reserved.
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

package recipe

import "errors"

var (
	// ErrMissingIdentity is returned when an ingredient has neither an
	// unlocalized nor a localized name.
	ErrMissingIdentity = errors.New("ingredient has no name")

	// ErrEmptyRecipeSet is returned when an operation receives fewer recipes
	// than it requires.
	ErrEmptyRecipeSet = errors.New("not enough recipes")
)
