package server

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/piwi3910/PatternCut/internal/engine"
	"github.com/piwi3910/PatternCut/internal/export"
	"github.com/piwi3910/PatternCut/internal/gcode"
	"github.com/piwi3910/PatternCut/internal/model"
)

// GenerateRequest is the body of the generate endpoints.
type GenerateRequest struct {
	Category     string             `json:"category"`
	Subcategory  string             `json:"subcategory"`
	Measurements model.Measurements `json:"measurements" binding:"max=64"`
	Fabric       string             `json:"fabric"`
}

// exportFormat describes one downloadable rendering of a plan.
type exportFormat struct {
	contentType string
	extension   string
	render      func(s *Server, w *bytes.Buffer, r export.Report) error
}

var exportFormats = map[string]exportFormat{
	"pdf": {
		contentType: "application/pdf",
		extension:   ".pdf",
		render:      func(_ *Server, w *bytes.Buffer, r export.Report) error { return export.WritePDF(w, r) },
	},
	"labels": {
		contentType: "application/pdf",
		extension:   "-labels.pdf",
		render:      func(_ *Server, w *bytes.Buffer, r export.Report) error { return export.WriteLabels(w, r) },
	},
	"dxf": {
		contentType: "application/dxf",
		extension:   ".dxf",
		render:      func(_ *Server, w *bytes.Buffer, r export.Report) error { return export.WriteDXF(w, r) },
	},
	"xlsx": {
		contentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		extension:   ".xlsx",
		render:      func(_ *Server, w *bytes.Buffer, r export.Report) error { return export.WriteXLSX(w, r) },
	},
	"gcode": {
		contentType: "text/plain; charset=utf-8",
		extension:   ".nc",
		render: func(s *Server, w *bytes.Buffer, r export.Report) error {
			return export.WriteGCode(w, r, s.cutterSettings())
		},
	},
}

func (s *Server) health() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
		})
	}
}

func (s *Server) listCategories() gin.HandlerFunc {
	return func(c *gin.Context) {
		schemas := make([]model.Schema, 0, len(engine.Categories()))
		for _, name := range engine.Categories() {
			schemas = append(schemas, engine.ResolveCategory(name))
		}
		c.JSON(http.StatusOK, schemas)
	}
}

func (s *Server) listPatterns() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, s.store.List())
	}
}

func (s *Server) getPattern() gin.HandlerFunc {
	return func(c *gin.Context) {
		pattern, ok := s.store.FindByID(c.Param("id"))
		if !ok {
			respondError(c, s.logger, ErrPatternNotFound)
			return
		}
		c.JSON(http.StatusOK, pattern)
	}
}

func (s *Server) createPattern() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req model.Pattern
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, s.logger, ErrValidation(err))
			return
		}
		if req.ImageFilename != "" && !isPlainFilename(req.ImageFilename) {
			respondError(c, s.logger, ErrValidation(fmt.Errorf("invalid image filename %q", req.ImageFilename)))
			return
		}

		pattern := model.NewPattern(req)
		if pattern.Category != "" && pattern.Plan == nil {
			plan := engine.GenerateCuttingPlan(pattern.Category, pattern.Subcategory, pattern.Measurements, pattern.Fabric)
			pattern.Plan = &plan
			s.metrics.RecordPlan(engine.ResolveCategory(pattern.Category).Category)
		}

		s.store.Add(pattern)
		s.persist()
		s.logger.Info("pattern created",
			zap.String("id", pattern.ID),
			zap.String("category", pattern.Category))
		c.JSON(http.StatusCreated, pattern)
	}
}

func (s *Server) deletePattern() gin.HandlerFunc {
	return func(c *gin.Context) {
		pattern, ok := s.store.Remove(c.Param("id"))
		if !ok {
			respondError(c, s.logger, ErrPatternNotFound)
			return
		}

		if pattern.ImageFilename != "" && isPlainFilename(pattern.ImageFilename) {
			imagePath := filepath.Join(s.cfg.UploadDir, pattern.ImageFilename)
			if err := os.Remove(imagePath); err != nil && !errors.Is(err, os.ErrNotExist) {
				s.logger.Warn("failed to remove pattern image",
					zap.String("path", imagePath),
					zap.Error(err))
			}
		}

		s.persist()
		c.JSON(http.StatusOK, gin.H{"message": "Pattern deleted"})
	}
}

func (s *Server) generatePlan() gin.HandlerFunc {
	return func(c *gin.Context) {
		req, ok := s.bindGenerateRequest(c)
		if !ok {
			return
		}
		plan := s.generate(req)
		c.JSON(http.StatusOK, plan)
	}
}

func (s *Server) exportPlan() gin.HandlerFunc {
	return func(c *gin.Context) {
		name := strings.ToLower(c.Param("format"))
		format, ok := exportFormats[name]
		if !ok {
			respondError(c, s.logger, &APIError{
				Status:  http.StatusNotFound,
				Message: fmt.Sprintf("Unknown export format %q", name),
			})
			return
		}

		req, ok := s.bindGenerateRequest(c)
		if !ok {
			return
		}
		plan := s.generate(req)
		report := s.buildReport(req, plan)

		var buf bytes.Buffer
		if err := format.render(s, &buf, report); err != nil {
			s.metrics.RecordExport(name, false)
			respondError(c, s.logger, fmt.Errorf("failed to render %s: %w", name, err))
			return
		}
		s.metrics.RecordExport(name, true)

		filename := "plan-" + engine.ResolveCategory(req.Category).Category + format.extension
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		c.Data(http.StatusOK, format.contentType, buf.Bytes())
	}
}

func (s *Server) bindGenerateRequest(c *gin.Context) (GenerateRequest, bool) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, s.logger, ErrValidation(err))
		return req, false
	}
	return req, true
}

func (s *Server) generate(req GenerateRequest) model.CuttingPlan {
	plan := engine.GenerateCuttingPlan(req.Category, req.Subcategory, req.Measurements, req.Fabric)
	category := engine.ResolveCategory(req.Category).Category
	s.metrics.RecordPlan(category)
	s.logger.Debug("plan generated",
		zap.String("category", category),
		zap.String("fabric", req.Fabric),
		zap.Int("pieces", len(plan.Pieces)))
	return plan
}

func (s *Server) buildReport(req GenerateRequest, plan model.CuttingPlan) export.Report {
	return export.Report{
		Category: engine.ResolveCategory(req.Category).Category,
		Fabric:   req.Fabric,
		Plan:     plan,
		Layout:   engine.LayoutMarker(plan.Pieces, plan.FabricRequirements.Width),
		Estimate: model.CalculatePurchaseEstimate(plan.Pieces, plan.FabricRequirements.Width, s.cfg.WastePercent, s.cfg.PricePerMeter),
	}
}

func (s *Server) cutterSettings() gcode.Settings {
	settings := gcode.DefaultSettings()
	if s.cfg.CutterProfile != "" {
		settings.Profile = s.cfg.CutterProfile
	}
	return settings
}

// isPlainFilename reports whether name is a bare file name with no directory
// component.
func isPlainFilename(name string) bool {
	return name == filepath.Base(name) && name != "." && name != ".." && !strings.ContainsAny(name, `/\`)
}
