package service

import (
	"fmt"
	"strings"

	"legal-letter-be/internal/constant"
	"legal-letter-be/internal/entity"
)

func documentSystemPrompt(category string) string {
	if prompt, ok := constant.CategorySystemPrompts[category]; ok {
		return prompt
	}
	return constant.CategorySystemPrompts[constant.CategoryBusinessLetters]
}

// writeFields renders only the fields present in formData, in table order.
func writeFields(sb *strings.Builder, fields []constant.FormField, formData map[string]interface{}) {
	for _, f := range fields {
		if v := fieldValue(formData[f.Key]); v != "" {
			fmt.Fprintf(sb, "%s: %s\n", f.Label, v)
		}
	}
}

// fieldValue formats one form input. Missing and null values render empty.
func fieldValue(v interface{}) string {
	if v == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(v))
}

func buildDocumentPrompt(documentType, category string, formData map[string]interface{}, urgencyLevel string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Generate a professional %s document with the following details:\n\n", documentType)

	writeFields(&sb, constant.DocumentCommonFields, formData)
	writeFields(&sb, constant.DocumentCategoryFields[category], formData)

	if urgencyLevel != "" && urgencyLevel != entity.UrgencyStandard {
		fmt.Fprintf(&sb, "\nUrgency Level: %s\n", urgencyLevel)
	}

	fmt.Fprintf(&sb, "\nPlease format this as a complete, professional %s document ready for use.", documentType)
	return sb.String()
}

func buildLetterPrompt(letterType, prompt string, formData map[string]interface{}, urgencyLevel string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Generate a professional %s letter with the following details:\n\n", letterType)
	if p := strings.TrimSpace(prompt); p != "" {
		sb.WriteString(p)
		sb.WriteString("\n\n")
	}

	writeFields(&sb, constant.LetterFields, formData)

	if urgencyLevel != "" && urgencyLevel != entity.UrgencyStandard {
		fmt.Fprintf(&sb, "Urgency: %s\n", urgencyLevel)
	}

	sb.WriteString("\nPlease format this as a complete, professional letter ready to send.")
	return sb.String()
}
