package templates_test

import (
	"context"
	"errors"
	"html/template"
	"io"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/folio/pkg/email/templates"
)

func TestRender(t *testing.T) {
	t.Parallel()

	t.Run("renders component", func(t *testing.T) {
		t.Parallel()

		c := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			_, err := io.WriteString(w, "<p>hello</p>")
			return err
		})

		out, err := templates.Render(context.Background(), c)
		require.NoError(t, err)
		assert.Equal(t, "<p>hello</p>", out)
	})

	t.Run("propagates render error", func(t *testing.T) {
		t.Parallel()

		boom := errors.New("boom")
		c := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			return boom
		})

		out, err := templates.Render(context.Background(), c)
		assert.ErrorIs(t, err, boom)
		assert.Empty(t, out)
	})
}

func TestRenderHTML_EscapesValues(t *testing.T) {
	t.Parallel()

	tmpl := template.Must(template.New("t").Parse(`<p>{{.}}</p>`))

	out, err := templates.RenderHTML(context.Background(), tmpl, `<script>alert("x")</script>`)
	require.NoError(t, err)
	assert.Equal(t, `<p>&lt;script&gt;alert(&#34;x&#34;)&lt;/script&gt;</p>`, out)
}
