package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/errs"
	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/model"
	"github.com/Astemirdum/biblioteca-service/biblioteca/internal/report"
	"github.com/Astemirdum/biblioteca-service/pkg/kafka"
)

const (
	ReportTable   = "tabla"
	ReportChart   = "grafico"
	ReportReceipt = "comprobante"

	defaultTable      = "prestamos"
	defaultChartParam = "libro_mas_solicitado"
	topBooksLimit     = 5
)

var unsafeFilename = regexp.MustCompile(`[^A-Za-z0-9_.-]+`)

type reportGenerated struct {
	ID      int    `json:"id"`
	Tipo    string `json:"tipo"`
	Archivo string `json:"archivo"`
}

// LoadReportTypes replaces the cached description -> id map.
func (s *Service) LoadReportTypes(ctx context.Context) error {
	types, err := s.repo.ListReportTypes(ctx)
	if err != nil {
		return errors.Wrap(err, "load report types")
	}
	m := make(map[string]int, len(types))
	for _, t := range types {
		m[strings.ToLower(t.Descripcion)] = t.ID
	}
	s.reportTypes.Store(&m)
	s.log.Debug("report types loaded", zap.Int("count", len(m)))
	return nil
}

func (s *Service) reportTypeID(ctx context.Context, name string) (int, error) {
	m := s.reportTypes.Load()
	if m == nil {
		if err := s.LoadReportTypes(ctx); err != nil {
			return 0, err
		}
		m = s.reportTypes.Load()
	}
	id, ok := (*m)[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidReportType, name)
	}
	return id, nil
}

func (s *Service) ListReportTypes(ctx context.Context) ([]model.ReportType, error) {
	return s.repo.ListReportTypes(ctx)
}

func (s *Service) CreateReportType(ctx context.Context, description string) (int, error) {
	id, err := s.repo.CreateReportType(ctx, description)
	if err != nil {
		return 0, err
	}
	if err := s.LoadReportTypes(ctx); err != nil {
		// the row exists; the next lookup miss reloads
		s.reportTypes.Store(nil)
		s.log.Warn("reload report types", zap.Error(err))
	}
	return id, nil
}

func (s *Service) ListReports(ctx context.Context) ([]model.Report, error) {
	return s.repo.ListReports(ctx)
}

// GenerateReport resolves tipo, records the audit row and renders the PDF.
// An unknown tipo fails before anything is written.
func (s *Service) GenerateReport(ctx context.Context, tipo string, filters map[string]any) (model.ReportFile, error) {
	tipo = strings.ToLower(tipo)
	typeID, err := s.reportTypeID(ctx, tipo)
	if err != nil {
		return model.ReportFile{}, err
	}
	reportID, err := s.repo.CreateReport(ctx, typeID)
	if err != nil {
		return model.ReportFile{}, errors.Wrap(err, "create report")
	}
	log := s.log.With(zap.Int("report_id", reportID), zap.String("tipo", tipo))
	log.Debug("report registered")

	var (
		doc  report.Document
		name string
	)
	switch tipo {
	case ReportTable:
		doc, name, err = s.tableReport(ctx, filters)
	case ReportChart:
		doc, name, err = s.chartReport(ctx, filters)
	case ReportReceipt:
		doc, name, err = s.receiptReport(ctx, typeID, filters)
	default:
		err = fmt.Errorf("%w: %s", errs.ErrUnsupportedReport, tipo)
	}
	if err != nil {
		return model.ReportFile{}, err
	}

	content, err := report.Render(doc)
	if err != nil {
		log.Error("render", zap.Error(err))
		return model.ReportFile{}, errors.Wrap(err, "render pdf")
	}
	s.publish(ctx, kafka.ReportTopic, kafka.EventReportGenerated, reportGenerated{
		ID:      reportID,
		Tipo:    tipo,
		Archivo: name,
	})
	return model.ReportFile{
		ReportID: reportID,
		Name:     name,
		Content:  content,
	}, nil
}

func (s *Service) tableReport(ctx context.Context, filters map[string]any) (report.Document, string, error) {
	tabla := stringFilter(filters, "tabla", defaultTable)
	var t report.Table
	switch tabla {
	case "libros":
		books, err := s.repo.ListBooks(ctx)
		if err != nil {
			return report.Document{}, "", err
		}
		t = report.BooksTable(books)
	case "usuarios":
		users, err := s.repo.ListUsers(ctx)
		if err != nil {
			return report.Document{}, "", err
		}
		t = report.UsersTable(users)
	case "disponibles":
		books, err := s.repo.AvailableBooks(ctx)
		if err != nil {
			return report.Document{}, "", err
		}
		t = report.AvailableTable(books)
	case "prestamos":
		loans, err := s.repo.ListLoans(ctx)
		if err != nil {
			return report.Document{}, "", err
		}
		t = report.LoansTable(loans)
	case "reportes":
		reports, err := s.repo.ListReports(ctx)
		if err != nil {
			return report.Document{}, "", err
		}
		t = report.ReportsTable(reports)
	default:
		return report.Document{}, "", fmt.Errorf("%w: %s", errs.ErrUnsupportedTable, tabla)
	}
	return report.TableDocument(t), "reporte_" + tabla + ".pdf", nil
}

func (s *Service) chartReport(ctx context.Context, filters map[string]any) (report.Document, string, error) {
	var (
		top    []model.BookLoanCount
		months []model.MonthLoanCount
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		top, err = s.repo.TopLoanedBooks(gctx, topBooksLimit)
		return err
	})
	g.Go(func() (err error) {
		months, err = s.repo.LoansByMonth(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return report.Document{}, "", errors.Wrap(err, "loan aggregates")
	}

	png, err := report.Chart(top, months)
	if err != nil {
		return report.Document{}, "", errors.Wrap(err, "chart")
	}
	name := safeFilename(stringFilter(filters, "parametro", defaultChartParam), defaultChartParam)
	return report.ChartDocument(png), name + ".pdf", nil
}

// receiptReport numbers the file by the comprobante audit rows, the current one included.
func (s *Service) receiptReport(ctx context.Context, typeID int, filters map[string]any) (report.Document, string, error) {
	raw, ok := filters["id_prestamo"]
	if !ok {
		return report.Document{}, "", errs.ErrLoanIDRequired
	}
	if raw == nil {
		// a null id matches no loan
		return report.Document{}, "", errs.ErrLoanNotFound
	}
	loanID, err := parseID(raw)
	if err != nil {
		return report.Document{}, "", err
	}
	receipt, err := s.repo.LoanReceipt(ctx, loanID)
	if err != nil {
		return report.Document{}, "", err
	}
	count, err := s.repo.CountReports(ctx, typeID)
	if err != nil {
		return report.Document{}, "", errors.Wrap(err, "count receipts")
	}
	return report.ReceiptDocument(receipt), fmt.Sprintf("comprobante_%d.pdf", count), nil
}

func stringFilter(filters map[string]any, key, def string) string {
	v, ok := filters[key]
	if !ok || v == nil {
		return def
	}
	s, ok := v.(string)
	if !ok {
		return fmt.Sprint(v)
	}
	if s == "" {
		return def
	}
	return s
}

func safeFilename(name, def string) string {
	name = strings.Trim(unsafeFilename.ReplaceAllString(name, "_"), "._")
	if name == "" {
		return def
	}
	return name
}

func parseID(v any) (int, error) {
	switch id := v.(type) {
	case float64:
		if id != math.Trunc(id) || math.IsInf(id, 0) {
			return 0, fmt.Errorf("%w: %v", errs.ErrInvalidLoanID, v)
		}
		return int(id), nil
	case int:
		return id, nil
	case json.Number:
		n, err := id.Int64()
		if err != nil {
			return 0, fmt.Errorf("%w: %v", errs.ErrInvalidLoanID, v)
		}
		return int(n), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(id))
		if err != nil {
			return 0, fmt.Errorf("%w: %q", errs.ErrInvalidLoanID, id)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("%w: %v", errs.ErrInvalidLoanID, v)
	}
}
