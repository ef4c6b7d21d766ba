// Copyright 2025 The lane2stardict Authors
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

package folding

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFold(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
		{
			name:     "already folded",
			input:    "word",
			expected: "word",
		},
		{
			name:     "leading whitespace",
			input:    "  word",
			expected: "word",
		},
		{
			name:     "trailing whitespace",
			input:    "word \t ",
			expected: "word",
		},
		{
			name:     "internal run",
			input:    "first \t\n second",
			expected: "first second",
		},
		{
			name:     "unicode whitespace",
			input:    "ذهب  إلى",
			expected: "ذهب إلى",
		},
		{
			name:     "only whitespace",
			input:    " \t\n",
			expected: "",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(test.expected, Fold(test.input)); diff != "" {
				t.Fatalf("Fold (-want, +got):\n%s", diff)
			}
		})
	}
}
