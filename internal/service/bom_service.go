package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kd-lxdia/RockrSolar-sub000/internal/bom"
	"github.com/kd-lxdia/RockrSolar-sub000/internal/entity"
	"github.com/kd-lxdia/RockrSolar-sub000/internal/repository"
	"github.com/xuri/excelize/v2"
)

// BOMService manages project specifications and derives their bills of
// materials. Generation itself is delegated to the pure rule engine; this
// layer only does the store round trips.
type BOMService struct {
	projectRepo *repository.ProjectRepository
}

func NewBOMService(projectRepo *repository.ProjectRepository) *BOMService {
	return &BOMService{projectRepo: projectRepo}
}

type CustomLineInput struct {
	Item     string `json:"item" binding:"required"`
	Type     string `json:"type"`
	Make     string `json:"make"`
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
}

type CreateProjectRequest struct {
	Customer        string            `json:"customer" binding:"required"`
	CapacityKW      float64           `json:"capacity_kw"`
	PanelWattage    float64           `json:"panel_wattage"`
	Phase           string            `json:"phase" binding:"omitempty,oneof=SINGLE TRIPLE"`
	DCWireLength    string            `json:"dc_wire_length"`
	ACWireLength    string            `json:"ac_wire_length"`
	MainWireLength  string            `json:"main_wire_length"`
	EarthWireLength string            `json:"earth_wire_length"`
	LegCount        int               `json:"leg_count"`
	TableOption     string            `json:"table_option" binding:"omitempty,oneof=standard Custom"`
	CustomLines     []CustomLineInput `json:"custom_lines"`
}

func (s *BOMService) CreateProject(req CreateProjectRequest) (*entity.ProjectSpec, error) {
	spec := &entity.ProjectSpec{
		ID:              uuid.New().String(),
		Customer:        req.Customer,
		CapacityKW:      req.CapacityKW,
		PanelWattage:    req.PanelWattage,
		Phase:           req.Phase,
		DCWireLength:    req.DCWireLength,
		ACWireLength:    req.ACWireLength,
		MainWireLength:  req.MainWireLength,
		EarthWireLength: req.EarthWireLength,
		LegCount:        req.LegCount,
		TableOption:     req.TableOption,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
	if spec.Phase == "" {
		spec.Phase = entity.PhaseSingle
	}
	if spec.TableOption == "" {
		spec.TableOption = entity.TableOptionStandard
	}

	if spec.IsCustom() {
		spec.CustomLines = customLines(spec.ID, req.CustomLines)
	} else if spec.CapacityKW <= 0 || spec.PanelWattage <= 0 {
		return nil, fmt.Errorf("capacity and panel wattage must be positive for a standard project")
	}

	if err := s.projectRepo.Create(spec); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return spec, nil
}

func customLines(projectID string, inputs []CustomLineInput) []entity.CustomLine {
	lines := make([]entity.CustomLine, 0, len(inputs))
	for i, in := range inputs {
		lines = append(lines, entity.CustomLine{
			ID:        uuid.New().String(),
			ProjectID: projectID,
			Serial:    i + 1,
			Item:      in.Item,
			Type:      in.Type,
			Make:      in.Make,
			Quantity:  in.Quantity,
			Unit:      in.Unit,
		})
	}
	return lines
}

func (s *BOMService) GetProject(id string) (*entity.ProjectSpec, error) {
	return s.projectRepo.GetByID(id)
}

func (s *BOMService) ListProjects(params repository.ProjectListParams) ([]entity.ProjectSpec, int64, error) {
	return s.projectRepo.List(params)
}

func (s *BOMService) DeleteProject(id string) error {
	return s.projectRepo.Delete(id)
}

// ReplaceCustomLines swaps the caller-supplied material list of a Custom
// project. Standard projects have no custom lines to replace.
func (s *BOMService) ReplaceCustomLines(projectID string, inputs []CustomLineInput) error {
	spec, err := s.projectRepo.GetByID(projectID)
	if err != nil {
		return fmt.Errorf("project not found: %w", err)
	}
	if !spec.IsCustom() {
		return fmt.Errorf("project %s is not a custom project", projectID)
	}
	return s.projectRepo.ReplaceCustomLines(projectID, customLines(projectID, inputs))
}

// MaterialLines returns the bill of materials for a project: rule engine
// output for standard projects, stored lines for Custom ones.
func (s *BOMService) MaterialLines(projectID string) ([]entity.MaterialLine, error) {
	spec, err := s.projectRepo.GetByID(projectID)
	if err != nil {
		return nil, fmt.Errorf("project not found: %w", err)
	}
	return bom.Lines(*spec), nil
}

var bomExportHeaders = []string{"S.No", "Item", "Type / Description", "Make", "Quantity", "Unit"}

// ExportBOM renders the project's bill as an xlsx workbook.
func (s *BOMService) ExportBOM(projectID string) (*excelize.File, string, error) {
	spec, err := s.projectRepo.GetByID(projectID)
	if err != nil {
		return nil, "", fmt.Errorf("project not found: %w", err)
	}
	lines := bom.Lines(*spec)

	f := excelize.NewFile()
	sheet := "BOM"
	f.SetSheetName("Sheet1", sheet)

	boldStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})

	for i, h := range bomExportHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, boldStyle)
	}

	for rowIdx, line := range lines {
		row := rowIdx + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), line.Serial)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), line.Item)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), line.Type)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), line.Make)
		if line.Quantity.Valid {
			f.SetCellValue(sheet, fmt.Sprintf("E%d", row), line.Quantity.Value)
		}
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), line.Unit)
	}

	filename := fmt.Sprintf("BOM_%s_%s.xlsx", spec.Customer, time.Now().Format("20060102"))
	return f, filename, nil
}
