package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"

	"go-bibsort/pkg/criteria"
	"go-bibsort/pkg/customerrors"
	"go-bibsort/services/executor"
	"go-bibsort/services/printer"
	"go-bibsort/util/helpers"
)

type ArticleController struct {
	es *executor.ExecutorService
}

func NewArticleController(es *executor.ExecutorService) *ArticleController {
	return &ArticleController{es: es}
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func errorResponse(ctx *gin.Context, status int, code, message string) {
	ctx.AbortWithStatusJSON(status, gin.H{"error": errorBody{Code: code, Message: message}})
}

func (c *ArticleController) SortHandler(ctx *gin.Context) {
	params := struct {
		By     string `form:"by" binding:"required"`
		Limit  int    `form:"limit" binding:"min=0"`
		Stable bool   `form:"stable"`
		Format string `form:"format"`
	}{}

	if err := ctx.ShouldBindQuery(&params); err != nil {
		errorResponse(ctx, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}

	crit, err := criteria.Parse(params.By)
	if err != nil {
		errorResponse(ctx, http.StatusBadRequest, "INVALID_CRITERION", err.Error())
		return
	}

	format, err := printer.ParseFormat(params.Format)
	if err != nil {
		errorResponse(ctx, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	}
	if format == printer.TEXT {
		format = printer.JSON
	}

	res, err := c.es.Exec(executor.Request{Criterion: crit, Limit: params.Limit, Stable: params.Stable})
	switch {
	case errors.Is(err, customerrors.ErrInvalidInput):
		errorResponse(ctx, http.StatusBadRequest, "INVALID_PARAM", err.Error())
		return
	case err != nil:
		errorResponse(ctx, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	page := printer.NewPage(res.Criterion, res.Total, res.Items)
	if format == printer.MSGPACK {
		blob, err := msgpack.Marshal(page)
		if err != nil {
			errorResponse(ctx, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
			return
		}
		ctx.Data(http.StatusOK, "application/msgpack", blob)
		return
	}
	ctx.JSON(http.StatusOK, page)
}

func (c *ArticleController) CriteriaHandler(ctx *gin.Context) {
	names := []string{}
	for _, crit := range criteria.All() {
		names = append(names, crit.String())
	}
	ctx.JSON(http.StatusOK, gin.H{"criteria": names, "total": c.es.Total()})
}

func (c *ArticleController) WordsHandler(ctx *gin.Context) {
	text, ok := ctx.GetQuery("text")
	if !ok {
		errorResponse(ctx, http.StatusBadRequest, "MISSING_PARAMETER", "missing text parameter")
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"text": text, "words": helpers.CountWords(text)})
}
