package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/candidate"
	"github.com/Melodious-nub/bnp-digital-backend/internal/domains/candidate/service"
	"github.com/Melodious-nub/bnp-digital-backend/internal/shared/response"
)

type ImportHandler struct {
	service service.ImportServiceInterface
}

func NewImportHandler(svc service.ImportServiceInterface) *ImportHandler {
	return &ImportHandler{
		service: svc,
	}
}

// Import - POST /v1/admin/candidates/import (super admin, multipart field "file")
// Responds with the full skip ledger so the operator can fix and re-submit
// only the failed rows.
func (h *ImportHandler) Import(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "no file uploaded")
		return
	}

	summary, err := h.service.ImportCandidates(c.Request.Context(), file)
	if err != nil {
		switch {
		case errors.Is(err, candidate.ErrEmptyWorkbook):
			response.BadRequest(c, err.Error())
		case errors.Is(err, candidate.ErrTooManyRows):
			response.BadRequest(c, err.Error())
		default:
			// Fatal batch error: everything rolled back, no partial summary
			response.InternalServerError(c, "import failed, no rows were written")
		}
		return
	}

	response.Success(c, http.StatusOK, summary)
}
