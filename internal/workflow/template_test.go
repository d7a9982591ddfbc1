package workflow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/calebms7/shepherd-backend/internal/workflow"
)

func TestRender_SubstitutesValues(t *testing.T) {
	values := map[string]string{"first_name": "Ana", "church_name": "Grace Chapel"}

	got := workflow.Render("Hi {{first_name}}, welcome to {{church_name}}!", values)

	assert.Equal(t, "Hi Ana, welcome to Grace Chapel!", got)
}

func TestRender_CaseInsensitiveKeys(t *testing.T) {
	values := map[string]string{"first_name": "Ana"}

	got := workflow.Render("Hi {{First_Name}}!", values)

	assert.Equal(t, "Hi Ana!", got)
}

func TestRender_WhitespaceInsideBraces(t *testing.T) {
	values := map[string]string{"first_name": "Ana"}

	got := workflow.Render("Hi {{  first_name  }}!", values)

	assert.Equal(t, "Hi Ana!", got)
}

func TestRender_UnknownPlaceholderLeftInPlace(t *testing.T) {
	got := workflow.Render("Hi {{first_name}}, see you at {{venue}}.", map[string]string{"first_name": "Ana"})

	assert.Equal(t, "Hi Ana, see you at {{venue}}.", got)
}

func TestRender_RepeatedPlaceholder(t *testing.T) {
	values := map[string]string{"church_name": "Grace Chapel"}

	got := workflow.Render("{{church_name}} / {{ church_name }}", values)

	assert.Equal(t, "Grace Chapel / Grace Chapel", got)
}

func TestRender_NoPlaceholders(t *testing.T) {
	assert.Equal(t, "plain text", workflow.Render("plain text", nil))
}
