package server

import (
	"errors"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const uploadField = "image"

var allowedImageTypes = regexp.MustCompile(`jpeg|jpg|png|gif|webp`)

func (s *Server) uploadImage() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.cfg.MaxUploadSize+1<<20)

		file, err := c.FormFile(uploadField)
		if err != nil {
			s.metrics.RecordUpload(false)
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				respondError(c, s.logger, ErrUpload("File too large"))
				return
			}
			respondError(c, s.logger, ErrNoFile)
			return
		}
		if file.Size > s.cfg.MaxUploadSize {
			s.metrics.RecordUpload(false)
			respondError(c, s.logger, ErrUpload("File too large"))
			return
		}

		ext := strings.ToLower(filepath.Ext(file.Filename))
		mimeType := file.Header.Get("Content-Type")
		if !allowedImageTypes.MatchString(ext) || !allowedImageTypes.MatchString(mimeType) {
			s.metrics.RecordUpload(false)
			respondError(c, s.logger, ErrUpload("Images only!"))
			return
		}

		filename := uuid.New().String() + ext
		if err := c.SaveUploadedFile(file, filepath.Join(s.cfg.UploadDir, filename)); err != nil {
			s.metrics.RecordUpload(false)
			respondError(c, s.logger, err)
			return
		}

		s.metrics.RecordUpload(true)
		s.logger.Info("image uploaded",
			zap.String("filename", filename),
			zap.Int64("size", file.Size))
		c.JSON(http.StatusOK, gin.H{
			"filename": filename,
			"url":      "/uploads/" + filename,
		})
	}
}
