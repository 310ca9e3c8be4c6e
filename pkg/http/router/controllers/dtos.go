package controllers

import (
	"github.com/lintang-b-s/campusnav/pkg/engine"
	"github.com/lintang-b-s/campusnav/pkg/geo"
	"github.com/lintang-b-s/campusnav/pkg/spatialindex"
	"github.com/lintang-b-s/campusnav/pkg/util"
)

type navigateRequest struct {
	Start       string `json:"start" validate:"required,max=256"`
	Destination string `json:"destination" validate:"required,max=256"`
}

type navigateBatchRequest struct {
	Queries []navigateRequest `json:"queries" validate:"required,min=1,max=100,dive"`
}

type nearbyBuildingsRequest struct {
	Lat    float64 `json:"lat" validate:"min=-90,max=90"`
	Lon    float64 `json:"lon" validate:"min=-180,max=180"`
	Radius float64 `json:"radius" validate:"min=0,max=10"`
}

type buildingResponse struct {
	Abbreviation string         `json:"abbreviation"`
	Name         string         `json:"name"`
	Coordinate   geo.Coordinate `json:"coordinate"`
}

type snapResponse struct {
	ID         int64          `json:"id"`
	Coordinate geo.Coordinate `json:"coordinate"`
	Distance   float64        `json:"distance_miles"`
}

type navigateResponse struct {
	Start           buildingResponse `json:"start"`
	Destination     buildingResponse `json:"destination"`
	StartSnap       snapResponse     `json:"start_snap"`
	DestinationSnap snapResponse     `json:"destination_snap"`
	Distance        float64          `json:"distance_miles"`
	Path            []int64          `json:"path"`
	Polyline        string           `json:"polyline"`
}

func NewNavigateResponse(res *engine.NavigationResult) navigateResponse {
	path := make([]int64, 0, len(res.Path))
	for _, id := range res.Path {
		path = append(path, int64(id))
	}

	return navigateResponse{
		Start: buildingResponse{
			Abbreviation: res.Start.Abbrev,
			Name:         res.Start.Fullname,
			Coordinate:   res.Start.Coords,
		},
		Destination: buildingResponse{
			Abbreviation: res.Destination.Abbrev,
			Name:         res.Destination.Fullname,
			Coordinate:   res.Destination.Coords,
		},
		StartSnap: snapResponse{
			ID:         int64(res.StartSnap.ID),
			Coordinate: res.StartSnap.Coordinate,
			Distance:   util.RoundFloat(res.StartSnap.Distance, 6),
		},
		DestinationSnap: snapResponse{
			ID:         int64(res.DestinationSnap.ID),
			Coordinate: res.DestinationSnap.Coordinate,
			Distance:   util.RoundFloat(res.DestinationSnap.Distance, 6),
		},
		Distance: util.RoundFloat(res.Distance, 6),
		Path:     path,
		Polyline: res.Polyline,
	}
}

type batchItemResponse struct {
	Data  *navigateResponse `json:"data,omitempty"`
	Error *errorBody        `json:"error,omitempty"`
}

type nearbyBuildingResponse struct {
	buildingResponse
	Distance float64 `json:"distance_miles"`
}

func NewNearbyBuildingsResponse(nearby []spatialindex.NearbyBuilding) []nearbyBuildingResponse {
	out := make([]nearbyBuildingResponse, 0, len(nearby))
	for _, nb := range nearby {
		out = append(out, nearbyBuildingResponse{
			buildingResponse: buildingResponse{
				Abbreviation: nb.Building.Abbrev,
				Name:         nb.Building.Fullname,
				Coordinate:   nb.Building.Coords,
			},
			Distance: util.RoundFloat(nb.Distance, 6),
		})
	}
	return out
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}
