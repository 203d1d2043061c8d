package controllers

import (
	"net/http"
	"strconv"

	"provilink-service/internal/app/contracts"
	"provilink-service/internal/pkg/constvars"
	"provilink-service/internal/pkg/dto/requests"
	"provilink-service/internal/pkg/dto/responses"
	"provilink-service/internal/pkg/exceptions"
	"provilink-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const maxBlogImageSizeInBytes = 10 << 20

type BlogController struct {
	Log         *zap.Logger
	BlogUsecase contracts.BlogUsecase
}

func NewBlogController(logger *zap.Logger, blogUsecase contracts.BlogUsecase) *BlogController {
	return &BlogController{
		Log:         logger,
		BlogUsecase: blogUsecase,
	}
}

// FindAll pages the listing when ?page= is present, otherwise returns the
// full set sorted newest first.
func (ctrl *BlogController) FindAll(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		blogs, err := ctrl.BlogUsecase.FindAll(r.Context())
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, err)
			return
		}
		utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, blogs)
		return
	}

	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))
	if pageSize < 1 {
		pageSize = constvars.AppDefaultPageSize
	}

	blogs, total, err := ctrl.BlogUsecase.FindPage(r.Context(), page, pageSize)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, page, pageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.ResponseSuccess, pagination, blogs)
}

func (ctrl *BlogController) FindByID(w http.ResponseWriter, r *http.Request) {
	blogID := chi.URLParam(r, "id")

	blog, err := ctrl.BlogUsecase.FindByID(r.Context(), blogID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, blog)
}

func (ctrl *BlogController) FindMine(w http.ResponseWriter, r *http.Request) {
	authorEmail := chi.URLParam(r, "email")

	blogs, err := ctrl.BlogUsecase.FindByAuthorEmail(r.Context(), authorEmail)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, blogs)
}

func (ctrl *BlogController) FindAuthor(w http.ResponseWriter, r *http.Request) {
	authorEmail := chi.URLParam(r, "email")

	author, err := ctrl.BlogUsecase.FindAuthor(r.Context(), authorEmail)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccess, author)
}

func (ctrl *BlogController) Create(w http.ResponseWriter, r *http.Request) {
	request := new(requests.CreateBlog)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	blogID, err := ctrl.BlogUsecase.Create(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.BlogCreatedSuccess, map[string]string{"inserted_id": blogID})
}

func (ctrl *BlogController) UploadImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxBlogImageSizeInBytes); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	file, fileHeader, err := r.FormFile("image")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}
	defer file.Close()

	imageURL, err := ctrl.BlogUsecase.UploadImage(r.Context(), file, fileHeader)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.BlogImageUploadSuccess, responses.UploadBlogImage{URL: imageURL})
}
