package handler

import (
	"net/http"
	"ufsbd-cms-server/internal/common/httpx"
	"ufsbd-cms-server/internal/dto"
	"ufsbd-cms-server/internal/logger"
	"ufsbd-cms-server/internal/service"

	"github.com/gin-gonic/gin"
)

func (h *GalleryHandler) List(c *gin.Context) {
	images, err := h.galleryService.List(c.Request.Context())
	if err != nil {
		httpx.WriteServiceError(c, err, "Impossible de charger la galerie")
		return
	}
	c.JSON(http.StatusOK, gin.H{"list": images})
}

func (h *GalleryHandler) Get(c *gin.Context) {
	image, err := h.galleryService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpx.WriteServiceError(c, err, "Impossible de charger l'image")
		return
	}
	c.JSON(http.StatusOK, image)
}

// Validate 仅做上传前检查，不写入任何数据
func (h *GalleryHandler) Validate(c *gin.Context) {
	var req dto.ValidateFileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.WriteBindError(c)
		return
	}
	c.JSON(http.StatusOK, h.galleryService.Validate(req.Name, req.Type, req.Size))
}

// Upload 先校验，校验失败时不会调用 Upload
func (h *GalleryHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Veuillez sélectionner un fichier"})
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if res := h.galleryService.Validate(fileHeader.Filename, mimeType, fileHeader.Size); !res.IsValid {
		c.JSON(http.StatusBadRequest, gin.H{"error": res.Error})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Impossible de lire le fichier"})
		return
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			logger.Warn().Err(cerr).Msg("⚠️ 关闭上传文件失败")
		}
	}()

	image, err := h.galleryService.Upload(c.Request.Context(), service.UploadInput{
		Reader:     file,
		FileName:   fileHeader.Filename,
		MimeType:   mimeType,
		Size:       fileHeader.Size,
		UploaderID: currentUserID(c),
	})
	if err != nil {
		httpx.WriteServiceError(c, err, "Échec du téléversement")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Image téléversée", "image": image})
}

func (h *GalleryHandler) Delete(c *gin.Context) {
	if err := h.galleryService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		httpx.WriteServiceError(c, err, "Impossible de supprimer l'image")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Image supprimée"})
}
