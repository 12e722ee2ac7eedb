package handlers

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/labstack/echo/v5"

	"clubsite/services"
)

// The fallback view is what the page swaps in when the interactive calendar
// widget fails to initialize. It takes the same entry set the widget would
// have received and renders it as a date-grouped, read-only list with the
// category legend, so no information is lost.
var fallbackTemplate = template.Must(template.New("fallback").Parse(`<div class="calendar-fallback">
<p class="fallback-note">The interactive calendar could not be loaded. Events are listed by date below.</p>
<ul class="legend">
{{- range .Legend}}
  <li><span class="swatch" style="background:{{.Color}}"></span>{{.Label}}</li>
{{- end}}
</ul>
{{- range .Days}}
<section class="day">
  <h3>{{.Date.Format "Monday, January 2, 2006"}}</h3>
  <ul class="day-events">
  {{- range .Entries}}
    <li>
      <span class="swatch" style="background:{{.Color}}"></span>
      {{- if .AllDay}}
      <span class="time">All day</span>
      {{- else}}
      <span class="time">{{.Start.Format "3:04 PM"}}</span>
      {{- end}}
      <a href="{{.URL}}">{{.Title}}</a>
    </li>
  {{- end}}
  </ul>
</section>
{{- else}}
<p class="empty">No events scheduled.</p>
{{- end}}
</div>
`))

type fallbackData struct {
	Legend []services.Category
	Days   []services.DayGroup
}

// FallbackList renders the server-side calendar fallback.
func (h *EventHandler) FallbackList(c echo.Context) error {
	entries, err := h.events.Calendar(c.Request().Context())
	if err != nil {
		return contentError(c, err)
	}

	data := fallbackData{
		Legend: services.Legend(),
		Days:   services.GroupByDay(entries),
	}

	var buf bytes.Buffer
	if err := fallbackTemplate.Execute(&buf, data); err != nil {
		return contentError(c, err)
	}
	return c.HTML(http.StatusOK, buf.String())
}
