package generation

import (
	"strings"

	"editorial/internal/domain/services"
)

// systemInstructionBase is the shared rule block sent on every call,
// regardless of workflow mode. The product speaks Brazilian Portuguese.
const systemInstructionBase = `Você é uma IA proprietária de uma agência de Social Media de elite.
Seu trabalho é traduzir o input estratégico do usuário em um guia de produção visual e textual irrefutável.

REGRAS DE OURO DE PLANEJAMENTO:
1. CRONOGRAMA COMPLETO: Se o usuário não sugerir dias específicos, você DEVE gerar um cronograma para TODOS os 7 dias da semana (Segunda a Domingo).
2. IMERSÃO COMO BÔNUS: O bloco de "Imersão" NÃO é um dia do cronograma. Ele é um material de apoio, um "asset" extra no rodapé para que o cliente use como material rico ou série especial.
3. FIDELIDADE AO TEXTO: O texto que vai no card DEVE ser extraído diretamente das ideias enviadas pelo usuário.
4. FORMATO REELS/VÍDEO: Para todo post de vídeo, você DEVE gerar um "reelsScript" técnico (Hook, Cenas, CTA).
5. CARROSSÉIS: Detalhe cada slide com descrição visual, imagem e texto exato.
6. LINGUAGEM "ELITE ACTIONABLE": Use comandos diretos de direção de arte e fotografia.

ESTRUTURA DE STORIES:
- Todo dia precisa de 3 a 5 passos de stories que criem antecipação ou reforcem a mensagem do feed.`

// Mode preambles select what the model is allowed to do with the input:
// invent (generative) or only rearrange (structural).
const (
	generativePreamble = `MODO GERATIVO:
O input do usuário é matéria-prima bruta. Expanda ideias esparsas em uma estratégia editorial completa, inventando com autoridade tudo o que faltar: temas, roteiros, legendas e direção de arte.`

	structuralPreamble = `MODO ESTRUTURAL:
O texto do usuário já está completo. Sua única tarefa é reorganizá-lo fielmente na estrutura do documento. NÃO invente conteúdo novo; preserve as palavras do usuário sempre que possível.`
)

// BuildInstruction assembles the steering instruction for a generation call.
// The style reference, when present, only constrains tone, never shape.
func BuildInstruction(req *services.GenerateRequest) string {
	var b strings.Builder

	switch req.Mode {
	case services.ModeStructural:
		b.WriteString(structuralPreamble)
	default:
		b.WriteString(generativePreamble)
	}
	b.WriteString("\n\n")
	b.WriteString(systemInstructionBase)

	if len(req.Days) > 0 {
		b.WriteString("\n\nDIAS SOLICITADOS:\nO usuário pediu apenas os seguintes dias: ")
		b.WriteString(strings.Join(req.Days, ", "))
		b.WriteString(". Gere o cronograma somente para esses dias.")
	}

	if ref := strings.TrimSpace(req.StyleReference); ref != "" {
		b.WriteString("\n\nBIBLIOTECA DE REFERÊNCIA (ESTILO E TOM):\n")
		b.WriteString(ref)
	}

	return b.String()
}
