package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/lintang-b-s/campusnav/pkg/datastructure"
	"github.com/lintang-b-s/campusnav/pkg/engine"
	"github.com/lintang-b-s/campusnav/pkg/engine/routing"
	"github.com/lintang-b-s/campusnav/pkg/geo"
	helper "github.com/lintang-b-s/campusnav/pkg/http/router/routerhelper"
	"github.com/lintang-b-s/campusnav/pkg/spatialindex"
	"github.com/lintang-b-s/campusnav/pkg/util"
	"github.com/paulmach/osm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockNavigationService struct {
	results map[string]*engine.NavigationResult
	errs    map[string]error
	nearby  []spatialindex.NearbyBuilding

	lastRadius float64
}

func key(start, destination string) string {
	return start + "|" + destination
}

func (m *mockNavigationService) Navigate(ctx context.Context, start, destination string) (*engine.NavigationResult, error) {
	if err, ok := m.errs[key(start, destination)]; ok {
		return nil, err
	}
	return m.results[key(start, destination)], nil
}

func (m *mockNavigationService) NavigateBatch(ctx context.Context, queries []engine.Query) []engine.QueryResult {
	out := make([]engine.QueryResult, 0, len(queries))
	for _, q := range queries {
		res, err := m.Navigate(ctx, q.Start, q.Destination)
		out = append(out, engine.QueryResult{Result: res, Err: err})
	}
	return out
}

func (m *mockNavigationService) NearbyBuildings(lat, lon, radius float64) ([]spatialindex.NearbyBuilding, error) {
	m.lastRadius = radius
	return m.nearby, nil
}

func (m *mockNavigationService) Stats() engine.Stats {
	return engine.Stats{Nodes: 10, Footways: 3, Buildings: 2, Vertices: 10, Edges: 8}
}

func newMockService() *mockNavigationService {
	uh := datastructure.NewBuilding("UH", "University Hall", geo.NewCoordinate(41.8737, -87.6509))
	lib := datastructure.NewBuilding("LIB", "Richard J. Daley Library", geo.NewCoordinate(41.8716, -87.6500))

	return &mockNavigationService{
		results: map[string]*engine.NavigationResult{
			key("UH", "LIB"): {
				Start:           uh,
				Destination:     lib,
				StartSnap:       routing.Snap{ID: 1, Coordinate: geo.NewCoordinate(41.8736, -87.6509), Distance: 0.01},
				DestinationSnap: routing.Snap{ID: 3, Coordinate: geo.NewCoordinate(41.8717, -87.6500), Distance: 0.02},
				Distance:        0.25,
				Path:            []osm.NodeID{1, 2, 3},
				Polyline:        "abc",
			},
		},
		errs: map[string]error{
			key("Gym", "LIB"): util.WrapErrorf(engine.ErrStartNotFound, util.ErrNotFound, "start building %q not found", "Gym"),
			key("UH", "ISO"):  util.WrapErrorf(routing.ErrUnreachable, util.ErrUnprocessable, "no walking path"),
			key("UH", "BUG"):  util.WrapErrorf(routing.ErrInconsistentPath, util.ErrInternalServerError, "internal server error"),
		},
		nearby: []spatialindex.NearbyBuilding{
			{Building: lib, Distance: 0.0},
			{Building: uh, Distance: 0.15},
		},
	}
}

func newTestRouter(svc NavigationService) *httprouter.Router {
	router := httprouter.New()
	New(svc, zap.NewNop()).Routes(helper.NewRouteGroup(router, "/api"))
	return router
}

func TestNavigateHandler(t *testing.T) {
	testCases := []struct {
		name       string
		url        string
		wantStatus int
		wantCode   string
	}{
		{name: "ok", url: "/api/navigate?start=UH&destination=LIB", wantStatus: http.StatusOK},
		{name: "missing destination", url: "/api/navigate?start=UH", wantStatus: http.StatusBadRequest, wantCode: "BAD_REQUEST"},
		{name: "missing start", url: "/api/navigate?destination=LIB", wantStatus: http.StatusBadRequest, wantCode: "BAD_REQUEST"},
		{name: "start not found", url: "/api/navigate?start=Gym&destination=LIB", wantStatus: http.StatusNotFound, wantCode: "NOT_FOUND"},
		{name: "unreachable", url: "/api/navigate?start=UH&destination=ISO", wantStatus: http.StatusUnprocessableEntity, wantCode: "UNPROCESSABLE_ENTITY"},
		{name: "internal error", url: "/api/navigate?start=UH&destination=BUG", wantStatus: http.StatusInternalServerError, wantCode: "INTERNAL_SERVER_ERROR"},
	}

	router := newTestRouter(newMockService())
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			if tt.wantCode != "" {
				var body errorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.wantCode, body.Error.Code)
				assert.NotEmpty(t, body.Error.Message)
				return
			}

			var body struct {
				Data navigateResponse `json:"data"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "UH", body.Data.Start.Abbreviation)
			assert.Equal(t, "LIB", body.Data.Destination.Abbreviation)
			assert.Equal(t, []int64{1, 2, 3}, body.Data.Path)
			assert.Equal(t, 0.25, body.Data.Distance)
			assert.Equal(t, int64(3), body.Data.DestinationSnap.ID)
			assert.Equal(t, "abc", body.Data.Polyline)
		})
	}
}

func TestNavigateBatchHandler(t *testing.T) {
	testCases := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{name: "malformed json", body: `{"queries": [`, wantStatus: http.StatusBadRequest},
		{name: "empty batch", body: `{"queries": []}`, wantStatus: http.StatusBadRequest},
		{name: "query without destination", body: `{"queries": [{"start": "UH"}]}`, wantStatus: http.StatusBadRequest},
	}

	router := newTestRouter(newMockService())
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/navigateBatch", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}

	t.Run("mixed results keep order", func(t *testing.T) {
		body := `{"queries": [
			{"start": "UH", "destination": "LIB"},
			{"start": "Gym", "destination": "LIB"},
			{"start": "UH", "destination": "ISO"}
		]}`
		req := httptest.NewRequest(http.MethodPost, "/api/navigateBatch", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Data []batchItemResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Data, 3)

		require.NotNil(t, resp.Data[0].Data)
		assert.Equal(t, []int64{1, 2, 3}, resp.Data[0].Data.Path)
		require.NotNil(t, resp.Data[1].Error)
		assert.Equal(t, "NOT_FOUND", resp.Data[1].Error.Code)
		require.NotNil(t, resp.Data[2].Error)
		assert.Equal(t, "UNPROCESSABLE_ENTITY", resp.Data[2].Error.Code)
	})
}

func TestNearbyBuildingsHandler(t *testing.T) {
	testCases := []struct {
		name       string
		url        string
		wantStatus int
		wantRadius float64
	}{
		{name: "default radius", url: "/api/buildings/nearby?lat=41.8716&lon=-87.65", wantStatus: http.StatusOK, wantRadius: 0},
		{name: "explicit radius", url: "/api/buildings/nearby?lat=41.8716&lon=-87.65&radius=0.5", wantStatus: http.StatusOK, wantRadius: 0.5},
		{name: "missing lat", url: "/api/buildings/nearby?lon=-87.65", wantStatus: http.StatusBadRequest},
		{name: "latitude out of range", url: "/api/buildings/nearby?lat=91&lon=-87.65", wantStatus: http.StatusBadRequest},
		{name: "negative radius", url: "/api/buildings/nearby?lat=41&lon=-87&radius=-1", wantStatus: http.StatusBadRequest},
		{name: "bad radius", url: "/api/buildings/nearby?lat=41&lon=-87&radius=far", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			svc := newMockService()
			router := newTestRouter(svc)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}
			assert.Equal(t, tt.wantRadius, svc.lastRadius)

			var resp struct {
				Data []nearbyBuildingResponse `json:"data"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			require.Len(t, resp.Data, 2)
			assert.Equal(t, "LIB", resp.Data[0].Abbreviation)
			assert.Equal(t, 0.15, resp.Data[1].Distance)
		})
	}
}

func TestStatsHandler(t *testing.T) {
	router := newTestRouter(newMockService())

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Data engine.Stats `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 8, resp.Data.Edges)
	assert.Equal(t, 2, resp.Data.Buildings)
}
