// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sequencenumber

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSequenceNumberWith(t *testing.T) {
	fixedDay := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	sng := NewGeneratorWith(func() time.Time { return fixedDay }, func() string { return "nUfojcH2M5j2j3Tk5A1mf2" })

	testCases := []struct {
		name     string
		input    int64
		expected string
	}{
		{
			name:     "买家ID不足四位补零",
			input:    1,
			expected: "GS202401150001nUfojcH2M5j2j3Tk5A",
		},
		{
			name:     "买家ID只保留后四位",
			input:    123456789,
			expected: "GS202401156789nUfojcH2M5j2j3Tk5A",
		},
		{
			name:     "后四位恰好全为零",
			input:    123450000,
			expected: "GS202401150000nUfojcH2M5j2j3Tk5A",
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			sn, err := sng.Generate(tc.input)

			assert.NoError(t, err)
			assert.Equal(t, tc.expected, sn)
			assert.Equal(t, snLength, len(sn))
		})
	}
}

func TestGenerateSequenceNumber(t *testing.T) {
	sn, err := NewGenerator().Generate(123456789)
	assert.NoError(t, err)
	assert.Contains(t, sn, "6789")
	assert.Equal(t, snLength, len(sn))
}
