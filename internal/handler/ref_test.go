package handler

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceRef_UnmarshalJSON(t *testing.T) {
	tests := map[string]struct {
		input   string
		want    PlaceRef
		wantErr string
	}{
		"Id":              {input: `7`, want: 7},
		"NumericString":   {input: `"7"`, want: 7},
		"PopulatedObject": {input: `{"id": 7, "name": "Central Park", "slug": "central-park"}`, want: 7},
		"ObjectStringId":  {input: `{"id": "7"}`, want: 7},
		"Null":            {input: `null`, want: 0},
		"ObjectWithoutId": {input: `{"name": "Central Park"}`, wantErr: "invalid place: object has no id"},
		"NestedObjectId":  {input: `{"id": {"id": 7}}`, wantErr: "invalid place: object has no id"},
		"Negative":        {input: `-1`, wantErr: `invalid place: "-1" is not a valid id`},
		"Word":            {input: `"park"`, wantErr: `invalid place: "park" is not a valid id`},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			var ref PlaceRef
			err := json.Unmarshal([]byte(test.input), &ref)

			if test.wantErr != "" {
				require.ErrorContains(t, err, test.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, ref)
		})
	}
}

func TestGroupRef_UnmarshalJSON(t *testing.T) {
	body := `[2, "3", {"id": 4, "name": "climbers", "administratorId": 9, "administrator": {"id": 9}}]`

	var refs []GroupRef
	err := json.Unmarshal([]byte(body), &refs)

	require.NoError(t, err)
	assert.Equal(t, []uint{2, 3, 4}, GroupIDs(refs))
}

func TestGroupRef_UnmarshalJSONInvalid(t *testing.T) {
	var refs []GroupRef
	err := json.Unmarshal([]byte(`[{"name": "climbers"}]`), &refs)

	require.ErrorContains(t, err, "invalid group: object has no id")
}
