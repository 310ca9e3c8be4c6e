package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/lintang-b-s/campusnav/pkg/engine"
	helper "github.com/lintang-b-s/campusnav/pkg/http/router/routerhelper"
	"go.uber.org/zap"
)

const maxBatchBodyBytes = 1 << 20

type routingAPI struct {
	navigationService NavigationService
	log               *zap.Logger
}

func New(navigationService NavigationService, log *zap.Logger) *routingAPI {
	return &routingAPI{
		navigationService: navigationService,
		log:               log,
	}
}

func (api *routingAPI) Routes(group *helper.RouteGroup) {
	group.GET("/navigate", api.navigate)
	group.POST("/navigateBatch", api.navigateBatch)
	group.GET("/buildings/nearby", api.nearbyBuildings)
	group.GET("/stats", api.stats)
}

// navigate
//
//	@Summary		shortest walking route between two campus buildings
//	@Tags			navigation
//	@Param			start		query	string	true	"start building (partial name or abbreviation)"
//	@Param			destination	query	string	true	"destination building (partial name or abbreviation)"
//	@Produce		json
//	@Success		200	{object}	navigateResponse
//	@Failure		400	{object}	errorResponse
//	@Failure		404	{object}	errorResponse
//	@Failure		422	{object}	errorResponse
//	@Router			/navigate [get]
func (api *routingAPI) navigate(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	query := r.URL.Query()
	request := navigateRequest{
		Start:       query.Get("start"),
		Destination: query.Get("destination"),
	}
	if err := validate(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	res, err := api.navigationService.Navigate(r.Context(), request.Start, request.Destination)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewNavigateResponse(res)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

// navigateBatch
//
//	@Summary		many start/destination queries at once, answered concurrently
//	@Tags			navigation
//	@Accept			json
//	@Produce		json
//	@Param			body	body		navigateBatchRequest	true	"queries"
//	@Success		200		{object}	[]batchItemResponse
//	@Failure		400		{object}	errorResponse
//	@Router			/navigateBatch [post]
func (api *routingAPI) navigateBatch(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var request navigateBatchRequest

	r.Body = http.MaxBytesReader(w, r.Body, maxBatchBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := r.Body.Close(); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
	if err := validate(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	queries := make([]engine.Query, 0, len(request.Queries))
	for _, q := range request.Queries {
		queries = append(queries, engine.Query{Start: q.Start, Destination: q.Destination})
	}

	results := api.navigationService.NavigateBatch(r.Context(), queries)

	items := make([]batchItemResponse, 0, len(results))
	for _, res := range results {
		if res.Err != nil {
			_, body := errorStatus(res.Err)
			items = append(items, batchItemResponse{Error: &body})
			continue
		}
		data := NewNavigateResponse(res.Result)
		items = append(items, batchItemResponse{Data: &data})
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": items}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

// nearbyBuildings
//
//	@Summary		buildings around a coordinate, closest first
//	@Tags			buildings
//	@Param			lat		query	number	true	"latitude"
//	@Param			lon		query	number	true	"longitude"
//	@Param			radius	query	number	false	"search radius in miles"
//	@Produce		json
//	@Success		200	{object}	[]nearbyBuildingResponse
//	@Failure		400	{object}	errorResponse
//	@Router			/buildings/nearby [get]
func (api *routingAPI) nearbyBuildings(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request nearbyBuildingsRequest
		err     error
	)

	query := r.URL.Query()

	request.Lat, err = strconv.ParseFloat(query.Get("lat"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("lat is required and must be a valid float"))
		return
	}
	request.Lon, err = strconv.ParseFloat(query.Get("lon"), 64)
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("lon is required and must be a valid float"))
		return
	}
	if rad := query.Get("radius"); rad != "" {
		request.Radius, err = strconv.ParseFloat(rad, 64)
		if err != nil {
			api.BadRequestResponse(w, r, errors.New("radius must be a valid float"))
			return
		}
	}
	if err := validate(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	nearby, err := api.navigationService.NearbyBuildings(request.Lat, request.Lon, request.Radius)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewNearbyBuildingsResponse(nearby)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

// stats
//
//	@Summary		map and graph sizes
//	@Tags			diagnostics
//	@Produce		json
//	@Success		200	{object}	engine.Stats
//	@Router			/stats [get]
func (api *routingAPI) stats(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": api.navigationService.Stats()}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}
