package entity

import "time"

// Electrical phase of the installation's service connection.
const (
	PhaseSingle = "SINGLE"
	PhaseTriple = "TRIPLE"
)

// PhaseLabel returns the human label used in material descriptions.
func PhaseLabel(phase string) string {
	if phase == PhaseTriple {
		return "3-Phase"
	}
	return "1-Phase"
}

// Table option of a project. A "Custom" project carries its own material
// lines and bypasses the rule engine entirely.
const (
	TableOptionStandard = "standard"
	TableOptionCustom   = "Custom"
)

// ProjectSpec is the engineering parameter set of one solar installation
// project. For non-custom projects CapacityKW and PanelWattage must be
// positive; for Custom projects the numeric fields are not authoritative and
// the materials come from CustomLines instead.
type ProjectSpec struct {
	ID           string    `json:"id" gorm:"primaryKey;size:36"`
	Customer     string    `json:"customer" gorm:"size:128;not null"`
	CapacityKW   float64   `json:"capacity_kw" gorm:"type:decimal(8,2)"`
	PanelWattage float64   `json:"panel_wattage" gorm:"type:decimal(8,2)"`
	Phase        string    `json:"phase" gorm:"size:8;not null;default:SINGLE"`
	// Wire lengths are kept as entered on the survey sheet ("50 mtr approx");
	// numeric content is extracted permissively where a rule needs it.
	DCWireLength    string `json:"dc_wire_length" gorm:"size:64"`
	ACWireLength    string `json:"ac_wire_length" gorm:"size:64"`
	MainWireLength  string `json:"main_wire_length" gorm:"size:64"`
	EarthWireLength string `json:"earth_wire_length" gorm:"size:64"`
	LegCount        int    `json:"leg_count"`
	TableOption     string `json:"table_option" gorm:"size:16;not null;default:standard"`

	CustomLines []CustomLine `json:"custom_lines,omitempty" gorm:"foreignKey:ProjectID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ProjectSpec) TableName() string {
	return "project_specs"
}

// IsCustom reports whether the project's materials are caller-supplied.
func (p ProjectSpec) IsCustom() bool {
	return p.TableOption == TableOptionCustom
}

// CustomLine is a caller-supplied material row for a Custom project. The
// quantity column is free text, parsed permissively when aggregated.
type CustomLine struct {
	ID        string `json:"id" gorm:"primaryKey;size:36"`
	ProjectID string `json:"project_id" gorm:"size:36;not null;index"`
	Serial    int    `json:"serial" gorm:"not null"`
	Item      string `json:"item" gorm:"size:128;not null"`
	Type      string `json:"type" gorm:"size:256"`
	Make      string `json:"make" gorm:"size:128"`
	Quantity  string `json:"quantity" gorm:"size:64"`
	Unit      string `json:"unit" gorm:"size:32"`
}

func (CustomLine) TableName() string {
	return "project_custom_lines"
}

// MaterialLine converts the stored row to the line shape the aggregator and
// exports consume.
func (l CustomLine) MaterialLine() MaterialLine {
	mk := l.Make
	if mk == "" {
		mk = StandardBrand
	}
	return MaterialLine{
		Serial:   l.Serial,
		Item:     l.Item,
		Type:     l.Type,
		Make:     mk,
		Quantity: ParseQuantity(l.Quantity),
		Unit:     l.Unit,
	}
}
