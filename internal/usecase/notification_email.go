package usecase

import (
	_ "embed"
	"strings"
)

const quoteCreatedSubject = "Seu orçamento foi criado!"

// The placeholder names are shared with the mailing collaborator's own copy
// of this template; keep them in sync.
//
//go:embed templates/quote_created.html
var quoteCreatedTemplate string

func renderQuoteCreatedBody(requesterName, budgetTypeName, quoteID string) string {
	body := strings.NewReplacer(
		"{{NOME_CLIENTE}}", requesterName,
		"{{TIPO_ORCAMENTO}}", budgetTypeName,
		"{{ID_ORCAMENTO}}", quoteID,
	).Replace(quoteCreatedTemplate)

	if strings.TrimSpace(body) == "" {
		return "<h1>Olá, " + requesterName + "!</h1><p>Seu orçamento foi criado com sucesso!</p>"
	}
	return body
}
