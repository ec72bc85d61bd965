package http

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"sip-planner/chart"
	"sip-planner/domain"
	"sip-planner/service"
)

//go:embed templates/*.html
var templateFS embed.FS

const indexTemplate = "index.html"

func loadTemplates() *template.Template {
	return template.Must(template.New("").ParseFS(templateFS, "templates/*.html"))
}

type pageData struct {
	Request  domain.CalculationRequest
	Report   *domain.Report
	ChartURL string
	Error    string
	Note     string
}

// PageHandler serves the single-page calculator: the form, the result lines and the chart.
type PageHandler struct {
	service *service.SIPService
}

func NewPageHandler(service *service.SIPService) *PageHandler {
	return &PageHandler{service: service}
}

func (h *PageHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, indexTemplate, pageData{
		Request: domain.DefaultRequest(),
		Note:    service.CalculatorNote,
	})
}

func (h *PageHandler) Submit(c *gin.Context) {
	var req domain.CalculationRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusBadRequest, indexTemplate, pageData{
			Request: domain.DefaultRequest(),
			Error:   "Please enter numeric values for every field.",
			Note:    service.CalculatorNote,
		})
		return
	}

	report, err := h.service.Calculate(c.Request.Context(), req)
	if err != nil {
		c.HTML(statusFor(err), indexTemplate, pageData{
			Request: req,
			Error:   err.Error(),
			Note:    service.CalculatorNote,
		})
		return
	}

	c.HTML(http.StatusOK, indexTemplate, pageData{
		Request:  req,
		Report:   &report,
		ChartURL: ChartURL(req),
		Note:     report.Note,
	})
}

func (h *PageHandler) Chart(c *gin.Context) {
	var req domain.CalculationRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.String(http.StatusBadRequest, "invalid chart parameters")
		return
	}

	result, err := h.service.Series(c.Request.Context(), req)
	if err != nil {
		c.String(statusFor(err), err.Error())
		return
	}

	// Render into a buffer first so a failure does not leave a half-written page.
	var buf bytes.Buffer
	if err := chart.Render(&buf, result); err != nil {
		slog.Error("chart render failed", "error", err)
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// ChartURL points at the chart page for req.
func ChartURL(req domain.CalculationRequest) string {
	q := url.Values{}
	q.Set("rate", strconv.FormatFloat(req.Rate, 'f', -1, 64))
	q.Set("years", strconv.Itoa(req.Years))
	q.Set("initial_sip", strconv.FormatFloat(req.InitialSIP, 'f', -1, 64))
	q.Set("sip_increase_rate", strconv.FormatFloat(req.SIPIncreaseRate, 'f', -1, 64))
	q.Set("initial_investment", strconv.FormatFloat(req.InitialInvestment, 'f', -1, 64))
	return "/chart?" + q.Encode()
}
