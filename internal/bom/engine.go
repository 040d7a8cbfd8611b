// Package bom expands a project specification into its bill of materials.
// Generate is a pure function: the same spec always yields the same 39
// ordered lines, and nothing is mutated or cached between calls.
package bom

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/kd-lxdia/RockrSolar-sub000/internal/entity"
)

// LineCount is the fixed length of an engine-generated bill.
const LineCount = 39

const asPerDesign = "AS PER DESIGN"

// Lines returns the material lines for a project: the stored custom lines
// for Custom projects, the rule engine output otherwise.
func Lines(spec entity.ProjectSpec) []entity.MaterialLine {
	if spec.IsCustom() {
		lines := make([]entity.MaterialLine, 0, len(spec.CustomLines))
		for _, cl := range spec.CustomLines {
			lines = append(lines, cl.MaterialLine())
		}
		return lines
	}
	return Generate(spec)
}

// Generate produces the 39-line standard bill for a non-custom project.
func Generate(spec entity.ProjectSpec) []entity.MaterialLine {
	kw := spec.CapacityKW
	phase := entity.PhaseLabel(spec.Phase)

	dcLen := entity.ExtractNumber(spec.DCWireLength)
	acLen := entity.ExtractNumber(spec.ACWireLength)
	mainLen := entity.ExtractNumber(spec.MainWireLength)
	earthLen := entity.ExtractNumber(spec.EarthWireLength)

	earthSets := 2.0
	if spec.Phase == entity.PhaseTriple {
		earthSets = 3
	}

	b := &builder{}

	b.add("Solar Panel", panelType(spec.PanelWattage), "", panelCount(kw, spec.PanelWattage), "Nos")
	b.add("Solar Inverter", inverterType(kw, spec.Phase), "", inverterCount(kw, spec.Phase), "Nos")
	b.add("DCDB", dcdbType(kw), "", entity.Qty(1), "Nos")
	b.add("ACDB", acdbType(kw), "", entity.Qty(1), "Nos")
	b.add("MCB/ELCB", mcbType(kw, spec.Phase), "", entity.Qty(1), "Nos")
	b.add("DC Solar Cable", dcWireType(dcLen), "", entity.Qty(dcLen), "Mtr")
	b.add("AC Cable (Inverter to ACDB)", inverterWireType(kw, spec.Phase), "", entity.Qty(acLen), "Mtr")
	b.add("AC Main Cable", acMainWireType(kw, spec.Phase), "", entity.Qty(mainLen), "Mtr")
	b.add("Earthing Wire", "6 Sq.mm Green Cu", "", entity.Qty(earthLen), "Mtr")
	b.add("Earthing Electrode", "2 Mtr Chemical Rod", "", entity.Qty(earthSets), "Nos")
	b.add("Earthing Chemical Compound", "25 Kg Bag", "", entity.Qty(earthSets), "Nos")
	b.add("Lightning Arrestor", "1 Mtr Copper Bonded", "", entity.Qty(1), "Nos")
	b.add("MC4 Connector", "1000V DC Pair", "", entity.Qty(2), "Pair")
	b.add("DC Fuse", "15A gPV with Holder", "", entity.Qty(2), "Nos")
	b.add("SPD (DC Side)", "Type II 1000V DC", "", entity.Qty(1), "Nos")
	b.add("SPD (AC Side)", "Type II 275V AC", "", entity.Qty(1), "Nos")

	colors := tapeColors(spec.Phase)
	b.add("Insulation Tape", strings.Join(colors, " / "), "", entity.Qty(float64(len(colors))), "Nos")

	b.add("Module Mounting Structure", "Pre-Galvanised Iron", "", entity.Qty(1), "Set")
	b.add("Anchor Fastener", "10 x 100 mm", "", perLeg(4, spec.LegCount), "Nos")
	b.add("Nut Bolt Set", "M10 SS", "", perLeg(6, spec.LegCount), "Set")
	b.add("Cement Grouting Bag", "OPC 53 Grade", "", perLeg(0.5, spec.LegCount), "Bag")

	// Up to 5 kW the hardware is a fixed kit; beyond that the quantity is
	// left open and the make column carries the site annotation.
	if kw <= 5 {
		b.add("Structure Hardware", "Clamps & Fasteners", "", entity.Qty(1), "Set")
	} else {
		b.add("Structure Hardware", "Clamps & Fasteners", "AS PER REQUIREMENT", entity.BlankQty(), "Set")
	}

	b.add("Earthing Strip", "25 x 3 mm GI", "", entity.Qty(10), "Mtr")
	b.add("Cable Tie 300mm", "Nylon UV Resistant", "", entity.Qty(1), "Pkt")
	b.add("Cable Tie 150mm", "Nylon UV Resistant", "", entity.Qty(1), "Pkt")
	b.add("PVC Conduit Pipe", "25 mm Heavy Duty", "", entity.Qty(10), "Nos")
	b.add("Conduit Accessories", "Bends & Couplers 25 mm", "", entity.Qty(1), "Set")
	b.add("GI Saddle", "25 mm", "", entity.Qty(1), "Pkt")
	b.add("Screw & Gitti", "Assorted", "", entity.Qty(1), "Pkt")
	b.add("Flexible Conduit", "25 mm", "", entity.Qty(1), "Roll")
	b.add("Copper Lug", "6 Sq.mm", "", entity.Qty(1), "Pkt")
	b.add("Cable Gland", "Assorted", "", entity.Qty(1), "Set")
	b.add("Ferrule & Sleeve", "Assorted", "", entity.Qty(1), "Pkt")
	b.add("Danger Board", "Acrylic 200 x 150 mm", "", entity.Qty(1), "Nos")
	b.add("Generation Meter", phase+" Static", "", entity.Qty(1), "Nos")
	b.add("Net Meter", phase+" Bi-Directional", "", entity.Qty(1), "Nos")
	b.add("Bonding Wire", "4 Sq.mm Green Cu", "", entity.Qty(10), "Mtr")
	b.add("Silicone Sealant", "Clear 280 ml", "", entity.Qty(1), "Nos")
	b.add("Module Cleaning Kit", "Brush & Wiper", "", entity.Qty(1), "Nos")

	return b.lines
}

type builder struct {
	lines []entity.MaterialLine
}

func (b *builder) add(item, typ, mk string, qty entity.Quantity, unit string) {
	if mk == "" {
		mk = entity.StandardBrand
	}
	b.lines = append(b.lines, entity.MaterialLine{
		Serial:   len(b.lines) + 1,
		Item:     item,
		Type:     typ,
		Make:     mk,
		Quantity: qty,
		Unit:     unit,
	})
}

// normalizeWattage tolerates the survey convention of entering panel wattage
// as a kW decimal: anything under 100 is taken as kW and scaled up.
func normalizeWattage(w float64) float64 {
	if w < 100 {
		return w * 1000
	}
	return w
}

func panelCount(kw, wattage float64) entity.Quantity {
	if kw <= 0 || wattage <= 0 {
		return entity.BlankQty()
	}
	return entity.Qty(math.Ceil(kw * 1000 / normalizeWattage(wattage)))
}

func panelType(wattage float64) string {
	if wattage <= 0 {
		return asPerDesign
	}
	return fmt.Sprintf("%s Wp Mono PERC Half-Cut", formatNum(normalizeWattage(wattage)))
}

// inverterSplit returns the unit count and per-unit rating for the capacity.
// Triple phase installations always take a single full-capacity unit.
func inverterSplit(kw float64, phase string) (units int, each float64) {
	if phase == entity.PhaseTriple {
		return 1, kw
	}
	switch {
	case kw < 7:
		return 1, kw
	case kw < 13:
		return 2, kw / 2
	default:
		return 3, kw / 3
	}
}

func inverterType(kw float64, phase string) string {
	if kw <= 0 {
		return asPerDesign
	}
	units, each := inverterSplit(kw, phase)
	return fmt.Sprintf("%d x %.1f kW String Inverter %s", units, math.Round(each*10)/10, entity.PhaseLabel(phase))
}

func inverterCount(kw float64, phase string) entity.Quantity {
	if kw <= 0 {
		return entity.BlankQty()
	}
	units, _ := inverterSplit(kw, phase)
	return entity.Qty(float64(units))
}

func dcdbType(kw float64) string {
	switch {
	case kw <= 6:
		return "1 IN 1 OUT"
	case kw <= 12:
		return "2 IN 2 OUT"
	case kw <= 18:
		return "3 IN 3 OUT"
	case kw <= 20:
		return "4 IN 4 OUT"
	default:
		return asPerDesign
	}
}

func acdbType(kw float64) string {
	if kw <= 5 {
		return "32A"
	}
	return "63A"
}

// mcbType resolves the amp bracket and always appends the phase-derived pole
// text, even when the bracket falls through to AS PER DESIGN.
func mcbType(kw float64, phase string) string {
	var amp string
	switch {
	case kw <= 5:
		amp = "32A"
	case kw <= 15:
		amp = "63A"
	case kw <= 20:
		amp = "100A"
	default:
		amp = asPerDesign
	}
	pole := "2 POLE"
	if phase == entity.PhaseTriple {
		pole = "4 POLE"
	}
	return amp + " " + pole
}

func acMainWireType(kw float64, phase string) string {
	if phase == entity.PhaseTriple {
		switch {
		case kw >= 5 && kw <= 10:
			return "4C x 6 Sq.mm Al"
		case kw > 10 && kw <= 20:
			return "4C x 10 Sq.mm Al"
		default:
			return asPerDesign
		}
	}
	switch {
	case kw <= 3:
		return "2C x 6 Sq.mm Al Armoured"
	case kw < 7:
		return "2C x 10 Sq.mm Al Armoured"
	default:
		return "2C x 16 Sq.mm Al Armoured"
	}
}

func inverterWireType(kw float64, phase string) string {
	cores := "3C"
	if phase == entity.PhaseTriple {
		cores = "5C"
	}
	if kw <= 10 {
		return cores + " x 2.5 Sq.mm Cu Flexible"
	}
	return cores + " x 4 Sq.mm Cu Flexible"
}

// dcWireType picks the gauge from the surveyed DC run length; runs over 50
// meters take the larger section.
func dcWireType(lengthMtr float64) string {
	if lengthMtr > 50 {
		return "1C x 6 Sq.mm Solar DC"
	}
	return "1C x 4 Sq.mm Solar DC"
}

func tapeColors(phase string) []string {
	if phase == entity.PhaseTriple {
		return []string{"Red", "Yellow", "Blue", "Black"}
	}
	return []string{"Red", "Black", "Green"}
}

// perLeg scales a base quantity by the structure leg count, rounded to two
// decimals. A missing leg count falls back to the base quantity itself.
func perLeg(base float64, legs int) entity.Quantity {
	if legs <= 0 {
		return entity.Qty(base)
	}
	return entity.Qty(math.Round(base*float64(legs)*100) / 100)
}

func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
