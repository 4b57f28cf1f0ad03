// Package pdf renders the analytics dashboard as a downloadable report: a
// header with the requesting user, the headline counters, then one table per
// panel (departments, top employees, project health).
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/ics-security/hrm-chat-gateway/internal/application/dto"
	"github.com/ics-security/hrm-chat-gateway/internal/application/usecase"
	"github.com/ics-security/hrm-chat-gateway/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 99, Green: 102, Blue: 241}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Compile-time check against the use-case port.
var _ usecase.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator renders the analytics report with Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator builds the generator.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateAnalyticsReport renders the report and returns its bytes.
func (g *MarotoReportGenerator) GenerateAnalyticsReport(
	_ context.Context,
	owner *entity.Session,
	data *dto.AnalyticsDTO,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("HRM Analytics Report", true).
		WithAuthor("ICS Security - HRM Chatbot", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(owner))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(statsRows(data)...)

	m.AddRows(sectionTitle("Thống kê theo phòng ban"))
	m.AddRows(departmentTable(data.DepartmentStats)...)

	m.AddRows(sectionTitle("Nhân viên hoàn thành nhiều việc nhất"))
	m.AddRows(topEmployeeTable(data.TopEmployees)...)

	m.AddRows(sectionTitle("Tình trạng dự án"))
	m.AddRows(projectHealthTable(data.ProjectHealth)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate report: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(owner *entity.Session) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("BÁO CÁO ANALYTICS - HRM CHATBOT", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Người xuất: "+owner.FullName+" ("+string(owner.Role)+")", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("ICS Security", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 2,
			}),
			text.New("© 2026 ICS Security", props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

// statsRows: headline counters in two columns plus the completion rate.
func statsRows(data *dto.AnalyticsDTO) []core.Row {
	stats := data.Stats
	pairs := [][2]string{
		{"Tổng nhân viên", strconv.Itoa(stats.TotalEmployees)},
		{"Đã check-in hôm nay", strconv.Itoa(stats.CheckedInToday)},
		{"Tổng công việc", strconv.Itoa(stats.TotalTasks)},
		{"Đã hoàn thành", strconv.Itoa(stats.CompletedTasks)},
		{"Quá hạn", strconv.Itoa(stats.OverdueTasks)},
		{"Dự án đang chạy", strconv.Itoa(stats.ActiveProjects)},
		{"Tỷ lệ hoàn thành", data.TaskCompletionRate.StringFixed(1) + "%"},
	}

	rows := make([]core.Row, 0, len(pairs))
	for _, p := range pairs {
		rows = append(rows, row.New(6).Add(
			col.New(5).Add(text.New(p[0], props.Text{Size: 9, Color: colorGray})),
			col.New(7).Add(text.New(p[1], props.Text{Size: 9, Style: fontstyle.Bold})),
		))
	}
	return rows
}

func sectionTitle(title string) core.Row {
	return row.New(10).Add(
		col.New(12).Add(text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 3,
		})),
	)
}

func tableHeader(cells []string, widths []int) core.Row {
	cols := make([]core.Col, 0, len(cells))
	for i, c := range cells {
		cols = append(cols, col.New(widths[i]).Add(
			text.New(c, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary}),
		))
	}
	return row.New(6).Add(cols...)
}

func tableRow(cells []string, widths []int) core.Row {
	cols := make([]core.Col, 0, len(cells))
	for i, c := range cells {
		cols = append(cols, col.New(widths[i]).Add(
			text.New(c, props.Text{Size: 8}),
		))
	}
	return row.New(5).Add(cols...)
}

func departmentTable(stats []dto.DepartmentStatDTO) []core.Row {
	widths := []int{4, 2, 2, 2, 2}
	rows := []core.Row{tableHeader([]string{"Phòng ban", "Nhân viên", "Công việc", "Hoàn thành", "Tỷ lệ"}, widths)}
	for _, d := range stats {
		rows = append(rows, tableRow([]string{
			d.Department,
			strconv.Itoa(d.EmployeeCount),
			strconv.Itoa(d.TotalTasks),
			strconv.Itoa(d.CompletedTasks),
			d.CompletionRate.StringFixed(1) + "%",
		}, widths))
	}
	return rows
}

func topEmployeeTable(top []dto.TopEmployeeDTO) []core.Row {
	widths := []int{1, 5, 4, 2}
	rows := []core.Row{tableHeader([]string{"#", "Họ tên", "Phòng ban", "Hoàn thành"}, widths)}
	for i, e := range top {
		rows = append(rows, tableRow([]string{
			strconv.Itoa(i + 1),
			e.FullName,
			e.Department,
			strconv.Itoa(e.CompletedTasks),
		}, widths))
	}
	return rows
}

func projectHealthTable(projects []dto.ProjectHealthDTO) []core.Row {
	widths := []int{5, 3, 2, 2}
	rows := []core.Row{tableHeader([]string{"Dự án", "Trạng thái", "Kết thúc", "Sức khỏe"}, widths)}
	for _, p := range projects {
		rows = append(rows, tableRow([]string{p.Name, p.Status, p.EndDate, p.Health}, widths))
	}
	return rows
}
