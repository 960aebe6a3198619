package view

import (
	"bytes"
	"net/http"

	"github.com/frahmantamala/manager-dashboard/internal/report"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	var rep report.Report
	err := With(r.Context(), h.Shell, RouteReports, func(v *ReportsView) error {
		if r.URL.Query().Has("spender") {
			rep = v.Select(r.URL.Query().Get("spender"))
		} else {
			rep = v.Current()
		}
		return nil
	})
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, rep)
}

func (h *Handler) ExportPDF(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, "pdf", "application/pdf", report.ExportPDF)
}

func (h *Handler) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, "xlsx", xlsxContentType, report.ExportXLSX)
}

func (h *Handler) export(w http.ResponseWriter, r *http.Request, format, contentType string, render func(report.Report) (*bytes.Buffer, error)) {
	var rep report.Report
	err := With(r.Context(), h.Shell, RouteReports, func(v *ReportsView) error {
		if r.URL.Query().Has("spender") {
			rep = v.Select(r.URL.Query().Get("spender"))
		} else {
			rep = v.Current()
		}
		return nil
	})
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	buf, err := render(rep)
	if err != nil {
		h.Logger.Error("ExportReport: failed to render", "format", format, "selection", rep.Selection, "error", err)
		h.HandleServiceError(w, err)
		return
	}

	if h.Metrics != nil {
		h.Metrics.ReportExports.WithLabelValues(format).Inc()
	}
	h.Logger.Info("ExportReport: report exported", "format", format, "selection", rep.Selection, "size", buf.Len())
	h.WriteFile(w, contentType, "report-"+rep.Selection+"."+format, buf.Bytes())
}
