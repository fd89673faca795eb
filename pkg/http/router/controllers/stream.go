package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	"github.com/julienschmidt/httprouter"
	"github.com/lintang-b-s/gridroute/pkg"
	"github.com/lintang-b-s/gridroute/pkg/datastructure"
	"go.uber.org/zap"
)

// StreamExpansions upgrades the request to a websocket and replays the
// search live: one frame per expanded cell in expansion order, then a
// terminal result frame. Visualizers animate the frontier from this stream.
func (api *routingAPI) StreamExpansions(w http.ResponseWriter, r *http.Request, p httprouter.Params) {
	query := r.URL.Query()

	startRow, err := strconv.Atoi(query.Get("start_row"))
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("start_row is required and must be a valid int"))
		return
	}
	startCol, err := strconv.Atoi(query.Get("start_col"))
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("start_col is required and must be a valid int"))
		return
	}
	goalRow, err := strconv.Atoi(query.Get("goal_row"))
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("goal_row is required and must be a valid int"))
		return
	}
	goalCol, err := strconv.Atoi(query.Get("goal_col"))
	if err != nil {
		api.BadRequestResponse(w, r, errors.New("goal_col is required and must be a valid int"))
		return
	}
	algorithm, err := pkg.ParseAlgorithm(query.Get("algorithm"))
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	snap := query.Get("snap") == "true"

	conn, _, _, err := ws.UpgradeHTTP(r, w)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	go func() {
		defer conn.Close()

		var writeErr error
		seq := 0

		route, pathPolyline, found, err := api.routingService.RouteWithExpansions(algorithm,
			startRow, startCol, goalRow, goalCol, snap,
			func(cell datastructure.Cell, frontierSize int) {
				if writeErr != nil {
					return
				}
				frame, err := json.Marshal(newExpansionFrame(cell, frontierSize, seq))
				if err != nil {
					writeErr = err
					return
				}
				seq++
				writeErr = wsutil.WriteServerMessage(conn, ws.OpText, frame)
			})
		if err != nil {
			api.log.Error("expansion stream search failed", zap.Error(err))
			return
		}
		if writeErr != nil {
			api.log.Error("expansion stream write failed", zap.Error(writeErr))
			return
		}

		result, err := json.Marshal(newResultFrame(NewRouteResponse(algorithm, route, pathPolyline, found)))
		if err != nil {
			api.log.Error("expansion stream marshal failed", zap.Error(err))
			return
		}
		if err := wsutil.WriteServerMessage(conn, ws.OpText, result); err != nil {
			api.log.Error("expansion stream write failed", zap.Error(err))
			return
		}
		wsutil.WriteServerMessage(conn, ws.OpClose, nil)
	}()
}
