package router

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/windnewsmapper/wind-news-mapper/internal/apperr"
	"github.com/windnewsmapper/wind-news-mapper/internal/dto"
	"github.com/windnewsmapper/wind-news-mapper/internal/storage"
)

const defaultFarmLimit = 100

type WindFarmRouter struct {
	g     *echo.Group
	farms storage.WindFarmStore
}

func NewWindFarmRouter(g *echo.Group, farms storage.WindFarmStore) *WindFarmRouter {
	return &WindFarmRouter{g: g, farms: farms}
}

func (r *WindFarmRouter) Bind() {
	r.g.GET("/wind-farms", r.listHandler)
	r.g.GET("/wind-farms/:id", r.getByIDHandler)
	r.g.POST("/wind-farms", r.createHandler)
}

func (r *WindFarmRouter) listHandler(c echo.Context) error {
	var params dto.ListWindFarmsParams
	if err := c.Bind(&params); err != nil {
		return apperr.NewValidationWrap("invalid query parameters", err)
	}
	params.Normalize(defaultFarmLimit)

	farms, err := r.farms.List(c.Request().Context(), storage.WindFarmQuery{
		Status: params.Status,
		Limit:  params.Limit,
		Skip:   params.Skip,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, farms)
}

func (r *WindFarmRouter) getByIDHandler(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return apperr.NewValidation("wind farm id must be a number")
	}

	farm, err := r.farms.GetByID(c.Request().Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		return apperr.NewNotFound("Wind farm not found")
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, farm)
}

func (r *WindFarmRouter) createHandler(c echo.Context) error {
	var req dto.CreateWindFarmRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if err := req.Validate(); err != nil {
		return err
	}

	farm, err := r.farms.Create(c.Request().Context(), req.ToDomain())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, farm)
}
