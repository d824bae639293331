package generation

import (
	"strings"
	"testing"

	"editorial/internal/domain/services"
)

func TestBuildInstructionModes(t *testing.T) {
	gen := BuildInstruction(&services.GenerateRequest{Mode: services.ModeGenerative})
	if !strings.Contains(gen, "MODO GERATIVO") {
		t.Error("generative mode should carry the generative preamble")
	}

	str := BuildInstruction(&services.GenerateRequest{Mode: services.ModeStructural})
	if !strings.Contains(str, "MODO ESTRUTURAL") {
		t.Error("structural mode should carry the structural preamble")
	}
	if !strings.Contains(str, "REGRAS DE OURO") {
		t.Error("every instruction carries the base rules")
	}
}

func TestBuildInstructionDaySubset(t *testing.T) {
	full := BuildInstruction(&services.GenerateRequest{Mode: services.ModeGenerative})
	if strings.Contains(full, "DIAS SOLICITADOS") {
		t.Error("no day-subset block without explicit days")
	}

	subset := BuildInstruction(&services.GenerateRequest{
		Mode: services.ModeGenerative,
		Days: []string{"Segunda-feira", "Quarta-feira"},
	})
	if !strings.Contains(subset, "Segunda-feira, Quarta-feira") {
		t.Errorf("requested days should be listed, got %q", subset)
	}
}

func TestBuildInstructionStyleReference(t *testing.T) {
	without := BuildInstruction(&services.GenerateRequest{Mode: services.ModeGenerative, StyleReference: "   "})
	if strings.Contains(without, "BIBLIOTECA DE REFERÊNCIA") {
		t.Error("blank style reference should not emit the reference block")
	}

	with := BuildInstruction(&services.GenerateRequest{
		Mode:           services.ModeGenerative,
		StyleReference: "Tom editorial seco.",
	})
	if !strings.Contains(with, "BIBLIOTECA DE REFERÊNCIA") || !strings.Contains(with, "Tom editorial seco.") {
		t.Error("style reference should be appended verbatim")
	}
}
