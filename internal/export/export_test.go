package export_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tiliavir/trivial-trip-planner/internal/export"
	"github.com/Tiliavir/trivial-trip-planner/internal/model"
)

func dest(id, group int, name string, lat, lng float64) model.GroupedDestination {
	return model.GroupedDestination{
		Destination: model.Destination{ID: id, Name: name, Latitude: lat, Longitude: lng},
		Group:       group,
	}
}

func TestWriteCSV(t *testing.T) {
	ds := []model.GroupedDestination{
		dest(7, 1, "Paris", 48.5, 2.25),
		dest(8, 2, "Zermatt, VS", 46, 7.75),
	}

	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, ds))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "position,group,destination_id,name,country,latitude,longitude", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "1,1,7,Paris,,48.5,"), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], `2,2,8,"Zermatt, VS",,`), lines[2])
}

func TestWriteJSONKeepsGroups(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteJSON(&buf, []model.GroupedDestination{dest(7, 3, "Paris", 0, 0)}))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, float64(7), got[0]["destinationId"])
	assert.Equal(t, float64(3), got[0]["group"])
}

func TestPaths(t *testing.T) {
	// Reference points from the encoded polyline algorithm documentation.
	ds := []model.GroupedDestination{
		dest(1, 1, "a", 38.5, -120.2),
		dest(9, 2, "x", 10, 10),
		dest(2, 1, "b", 40.7, -120.95),
		dest(3, 1, "c", 43.252, -126.453),
	}

	paths := export.Paths(ds)
	require.Len(t, paths, 2)

	assert.Equal(t, 1, paths[0].Group)
	assert.Equal(t, 3, paths[0].Points)
	assert.Equal(t, "_p~iF~ps|U_ulLnnqC_mqNvxq`@", paths[0].Polyline)

	assert.Equal(t, 2, paths[1].Group)
	assert.Equal(t, 1, paths[1].Points)
}

func TestPathsEmpty(t *testing.T) {
	assert.Empty(t, export.Paths(nil))
}
