package web

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

func Lobby(data LobbyData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		writePageStart(w, "Game Lobby", "lobby")

		var b strings.Builder
		b.WriteString(`    <main class="shell">
      <section class="panel lobby-panel">
        <h1 class="lobby-title">Game Lobby</h1>
`)
		if data.CurrentSessionID != "" {
			b.WriteString(`        <p class="resume">You were playing <a href="/play/` + esc(data.CurrentSessionID) + `">` + esc(data.CurrentTitle) + `</a>.</p>
`)
		}
		b.WriteString(`        <div class="game-list">
`)
		for _, game := range data.Games {
			class := "game-button theme-" + game.Theme
			if game.Current {
				class += " current"
			}
			b.WriteString(`          <button class="` + esc(class) + `" data-game="` + esc(game.ID) + `" aria-label="Start ` + esc(game.Title) + ` Game" title="` + esc(game.Tagline) + `">` + esc(game.Title) + `</button>
`)
		}
		b.WriteString(`        </div>
        <p id="lobbyError" class="result" role="alert"></p>
      </section>
    </main>

    <script>
      const lobbyError = document.getElementById("lobbyError");
      document.querySelectorAll("[data-game]").forEach((button) => {
        button.addEventListener("click", async () => {
          lobbyError.textContent = "";
          const res = await fetch("/api/lobby/navigate", {
            method: "POST",
            headers: { "Content-Type": "application/json" },
            body: JSON.stringify({ game_id: button.dataset.game })
          });
          const data = await res.json();
          if (!res.ok) {
            lobbyError.textContent = data.error || "Could not open the game.";
            return;
          }
          window.location.href = "/play/" + encodeURIComponent(data.session_id);
        });
      });
    </script>
`)
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		writePageEnd(w)
		return nil
	})
}
