package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/julienschmidt/httprouter"
	"github.com/lintang-b-s/gridroute/pkg"
	helper "github.com/lintang-b-s/gridroute/pkg/http/router/routerhelper"
	"go.uber.org/zap"
)

type routingAPI struct {
	routingService RoutingService
	log            *zap.Logger
}

func New(routingService RoutingService, log *zap.Logger) *routingAPI {
	return &routingAPI{
		routingService: routingService,
		log:            log,
	}

}

func (api *routingAPI) Routes(group *helper.RouteGroup) {
	group.GET("/route", api.shortestPath)
	group.GET("/compareRoutes", api.compareRoutes)
}

func (api *routingAPI) shortestPath(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request routeRequest
		err     error
	)

	query := r.URL.Query()

	request.StartRow, err = strconv.Atoi(query.Get("start_row"))
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("start_row is required and must be a valid int"))
		return
	}
	request.StartCol, err = strconv.Atoi(query.Get("start_col"))
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("start_col is required and must be a valid int"))
		return
	}
	request.GoalRow, err = strconv.Atoi(query.Get("goal_row"))
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("goal_row is required and must be a valid int"))
		return
	}
	request.GoalCol, err = strconv.Atoi(query.Get("goal_col"))
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("goal_col is required and must be a valid int"))
		return
	}
	request.Algorithm = query.Get("algorithm")

	validate := validator.New()
	if err := validate.Struct(request); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", vvString))
		return
	}

	algorithm, err := pkg.ParseAlgorithm(request.Algorithm)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	snap := query.Get("snap") == "true"

	route, pathPolyline, found, err := api.routingService.Route(algorithm,
		request.StartRow, request.StartCol, request.GoalRow, request.GoalCol, snap)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewRouteResponse(algorithm,
		route, pathPolyline, found)}, headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}

func (api *routingAPI) compareRoutes(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	var (
		request compareRoutesRequest
		err     error
	)

	query := r.URL.Query()

	request.StartRow, err = strconv.Atoi(query.Get("start_row"))
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("start_row is required and must be a valid int"))
		return
	}
	request.StartCol, err = strconv.Atoi(query.Get("start_col"))
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("start_col is required and must be a valid int"))
		return
	}
	request.GoalRow, err = strconv.Atoi(query.Get("goal_row"))
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("goal_row is required and must be a valid int"))
		return
	}
	request.GoalCol, err = strconv.Atoi(query.Get("goal_col"))
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("goal_col is required and must be a valid int"))
		return
	}

	validate := validator.New()
	if err := validate.Struct(request); err != nil {
		english := en.New()
		uni := ut.New(english, english)
		trans, _ := uni.GetTranslator("en")
		_ = enTranslations.RegisterDefaultTranslations(validate, trans)
		vv := translateError(err, trans)
		vvString := []string{}
		for _, v := range vv {
			vvString = append(vvString, v.Error())
		}
		api.BadRequestResponse(w, r, fmt.Errorf("validation error: %v", vvString))
		return
	}

	snap := query.Get("snap") == "true"

	comparisons, err := api.routingService.CompareRoutes(request.StartRow, request.StartCol,
		request.GoalRow, request.GoalCol, snap)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	headers := make(http.Header)

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewCompareRoutesResponse(comparisons)},
		headers); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}
}
