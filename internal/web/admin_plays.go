package web

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

func AdminPlays(data AdminPlaysData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`    <main class="shell admin">
      <h1>Plays</h1>
      <p><a href="/">Back to lobby</a></p>
      <section class="panel">
        <h2>Active sessions</h2>
`)
		if len(data.Active) == 0 {
			b.WriteString(`        <p class="empty">No active sessions.</p>
`)
		} else {
			b.WriteString(`        <table>
          <thead><tr><th>Session</th><th>Game</th><th>Phase</th><th>Round</th><th>Score</th><th>Sockets</th><th>Created</th></tr></thead>
          <tbody>
`)
			for _, session := range data.Active {
				b.WriteString(`            <tr><td><code>` + esc(session.ID) + `</code></td><td>` + esc(session.GameID) +
					`</td><td>` + esc(session.Phase) + `</td><td>` + itoa(session.Round) + `</td><td>` + itoa(session.Score) +
					`</td><td>` + itoa(session.Sockets) + `</td><td>` + formatTime(session.CreatedAt) + `</td></tr>
`)
			}
			b.WriteString(`          </tbody>
        </table>
`)
		}
		b.WriteString(`      </section>
      <section class="panel">
        <h2>History</h2>
        <form method="get" action="/admin/plays" class="filter">
          <label>Game <input name="game" value="` + esc(data.GameFilter) + `"/></label>
          <button type="submit">Filter</button>
        </form>
`)
		switch {
		case data.Error != "":
			b.WriteString(`        <p class="error">` + esc(data.Error) + `</p>
`)
		case len(data.Plays) == 0:
			b.WriteString(`        <p class="empty">No plays recorded.</p>
`)
		default:
			b.WriteString(`        <table>
          <thead><tr><th>ID</th><th>Session</th><th>Game</th><th>Score</th><th>Starts</th><th>Outcome</th><th>Finished</th><th>Left</th><th>Created</th></tr></thead>
          <tbody>
`)
			for _, play := range data.Plays {
				b.WriteString(`            <tr><td>` + utoa(play.ID) + `</td><td><code>` + esc(play.SessionID) + `</code></td><td>` + esc(play.GameID) +
					`</td><td>` + itoa(play.Score) + ` / ` + itoa(play.TotalRounds) + `</td><td>` + itoa(play.Starts) +
					`</td><td>` + playOutcome(play) + `</td><td>` + formatOptionalTime(play.FinishedAt) +
					`</td><td>` + formatOptionalTime(play.ExitedAt) + `</td><td>` + formatTime(play.CreatedAt) + `</td></tr>
`)
			}
			b.WriteString(`          </tbody>
        </table>
`)
			writePagination(&b, data.Pagination)
		}
		b.WriteString(`      </section>
    </main>
`)
		writePageStart(w, "Plays", "admin")
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		writePageEnd(w)
		return nil
	})
}

func writePagination(b *strings.Builder, p PaginationData) {
	if p.TotalPages <= 1 {
		return
	}
	base := p.BasePath
	b.WriteString(`        <nav class="pagination">
`)
	if p.HasPrev {
		b.WriteString(`          <a href="` + esc(pageURL(base, p.PrevPage, p.PerPage)) + `">Previous</a>
`)
	}
	b.WriteString(`          <span>Page ` + itoa(p.Page) + ` of ` + itoa(p.TotalPages) + ` (` + itoa(p.Total) + ` plays)</span>
`)
	if p.HasNext {
		b.WriteString(`          <a href="` + esc(pageURL(base, p.NextPage, p.PerPage)) + `">Next</a>
`)
	}
	b.WriteString(`        </nav>
`)
}
