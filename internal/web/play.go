package web

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Play renders the shell of a game screen. Everything inside #stage is drawn
// by the script from websocket snapshots.
func Play(data PlayData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		writePageStart(w, data.Title, "play theme-"+data.Theme)
		_, err := io.WriteString(w, `    <main class="shell">
      <header class="game-bar">
        <button id="backButton" class="link" aria-label="Back to lobby">&larr; Back</button>
        <h1>`+esc(data.Title)+`</h1>
        <div id="scoreBox" class="score" aria-live="polite"></div>
      </header>
      <section id="stage" class="panel stage" data-session="`+esc(data.SessionID)+`" data-game="`+esc(data.GameID)+`">
        <p>`+esc(data.Tagline)+`</p>
      </section>
      <p id="feedback" class="feedback" role="status" aria-live="polite"></p>
    </main>
`+playScript+`
`)
		if err != nil {
			return err
		}
		writePageEnd(w)
		return nil
	})
}

const playScript = `    <script>
      const stage = document.getElementById("stage");
      const feedbackEl = document.getElementById("feedback");
      const scoreBox = document.getElementById("scoreBox");
      const sessionID = stage.dataset.session;
      const gameID = stage.dataset.game;
      const api = "/api/sessions/" + encodeURIComponent(sessionID);
      const BOARD = 500;
      let lastSeq = -1;
      let current = null;

      async function post(path, body) {
        const res = await fetch(api + path, {
          method: "POST",
          headers: { "Content-Type": "application/json" },
          body: body ? JSON.stringify(body) : "{}"
        });
        if (res.status === 404) {
          window.location.href = "/";
          return null;
        }
        return res;
      }

      async function act(path, body) {
        const res = await post(path, body);
        if (!res || !res.ok) return;
        apply(await res.json());
      }

      function playURL(url) {
        if (!url) return;
        const audio = new Audio(url);
        audio.play().catch(() => {});
      }

      function speak(text) {
        if (!text || !("speechSynthesis" in window)) return;
        window.speechSynthesis.cancel();
        const utterance = new SpeechSynthesisUtterance(text);
        utterance.rate = 0.9;
        utterance.pitch = 1.2;
        window.speechSynthesis.speak(utterance);
      }

      function runCues(cues) {
        (cues || []).forEach((cue) => {
          if (cue.kind === "speak") {
            setTimeout(() => speak(cue.text), 200);
          } else {
            playURL(cue.url);
          }
        });
      }

      async function playSound(button) {
        button.disabled = true;
        try {
          const res = await post("/sound");
          if (!res || !res.ok) return;
          const type = res.headers.get("Content-Type") || "";
          if (type.startsWith("audio/")) {
            playURL(URL.createObjectURL(await res.blob()));
          } else {
            playURL((await res.json()).url);
          }
        } finally {
          button.disabled = false;
        }
      }

      function el(tag, attrs, text) {
        const node = document.createElement(tag);
        Object.entries(attrs || {}).forEach(([key, value]) => node.setAttribute(key, value));
        if (text !== undefined) node.textContent = text;
        return node;
      }

      function button(label, onClick, cls) {
        const node = el("button", { class: cls || "primary" }, label);
        node.addEventListener("click", onClick);
        return node;
      }

      function shapeSVG(kind, color, outline) {
        const fill = outline ? "none" : color;
        const stroke = outline ? "#888" : color;
        const dash = outline ? ' stroke-dasharray="8 6"' : "";
        const shapes = {
          square: '<rect x="15" y="15" width="70" height="70" rx="6"/>',
          circle: '<circle cx="50" cy="50" r="38"/>',
          triangle: '<polygon points="50,10 90,88 10,88"/>',
          star: '<polygon points="50,6 61,38 95,38 67,58 78,92 50,71 22,92 33,58 5,38 39,38"/>'
        };
        return '<svg viewBox="0 0 100 100" width="96" height="96"><g fill="' + fill + '" stroke="' + stroke + '" stroke-width="5"' + dash + '>' + (shapes[kind] || "") + "</g></svg>";
      }

      function renderStart(snap) {
        stage.append(el("h2", {}, snap.info.title));
        stage.append(el("p", { class: "tagline" }, snap.info.tagline));
        stage.append(button("Start Game", () => act("/start")));
      }

      function renderEnd(snap) {
        stage.append(el("h2", {}, snap.info.end_title));
        if (snap.info.end_message) {
          stage.append(el("p", { class: "final" }, snap.info.end_message));
        } else {
          stage.append(el("p", { class: "final" }, "Your final score is: " + snap.score + " / " + snap.total_rounds));
        }
        stage.append(button("Play Again", () => act("/restart")));
        stage.append(button("Back to Lobby", goToLobby, "secondary"));
      }

      function renderCards(snap) {
        if (snap.prompt) stage.append(el("p", { class: "prompt" }, snap.prompt));
        if (snap.has_sound) {
          const soundButton = button("Play Sound", () => playSound(soundButton), "sound");
          soundButton.setAttribute("aria-label", "Play the animal sound");
          stage.append(soundButton);
        }
        const grid = el("div", { class: "cards" });
        snap.options.forEach((option) => {
          const card = el("button", { class: "card status-" + option.status, "aria-label": option.label });
          if (option.image) card.append(el("img", { src: option.image, alt: option.label }));
          if (option.emoji) card.append(el("span", { class: "emoji" }, option.emoji));
          if (option.color && !option.kind) card.style.background = option.color;
          if (!option.image && !option.color) card.append(el("span", { class: "label" }, option.label));
          if (option.image) card.append(el("span", { class: "label" }, option.label));
          card.disabled = snap.phase !== "playing";
          card.addEventListener("click", () => act("/select", { choice_id: option.id }));
          grid.append(card);
        });
        stage.append(grid);
      }

      function renderShapes(snap) {
        const target = el("div", { class: "drop-target", "aria-label": snap.prompt || "Drop target" });
        if (snap.target) target.innerHTML = shapeSVG(snap.target.kind, "", true);
        target.append(el("p", {}, snap.prompt || ""));
        target.addEventListener("dragover", (event) => event.preventDefault());
        target.addEventListener("drop", (event) => {
          event.preventDefault();
          const kind = event.dataTransfer.getData("text/plain");
          if (kind) act("/select", { choice_id: kind });
        });
        stage.append(target);
        const tray = el("div", { class: "cards shapes" });
        snap.options.forEach((option) => {
          const piece = el("div", { class: "shape status-" + option.status, draggable: "true", role: "button", tabindex: "0", "aria-label": option.label });
          piece.innerHTML = shapeSVG(option.kind, option.color, false);
          piece.addEventListener("dragstart", (event) => event.dataTransfer.setData("text/plain", option.id));
          piece.addEventListener("keydown", (event) => {
            if (event.key === "Enter" || event.key === " ") act("/select", { choice_id: option.id });
          });
          tray.append(piece);
        });
        stage.append(tray);
      }

      function renderStars(snap) {
        stage.append(el("p", { class: "prompt" }, "Picture " + (snap.level + 1) + " of " + snap.level_count));
        const canvas = el("canvas", { width: BOARD, height: BOARD, class: "board", "aria-label": "Star board" });
        const ctx = canvas.getContext("2d");
        ctx.fillStyle = "#0f172a";
        ctx.fillRect(0, 0, BOARD, BOARD);
        const stars = snap.stars || [];
        ctx.strokeStyle = "#facc15";
        ctx.lineWidth = 4;
        ctx.beginPath();
        stars.slice(0, snap.connected).forEach((star, i) => {
          if (i === 0) ctx.moveTo(star.x, star.y); else ctx.lineTo(star.x, star.y);
        });
        ctx.stroke();
        const drawn = new Set();
        stars.forEach((star, i) => {
          const key = star.x + "," + star.y;
          if (drawn.has(key)) return;
          drawn.add(key);
          ctx.fillStyle = i < snap.connected ? "#facc15" : "#e2e8f0";
          ctx.beginPath();
          ctx.arc(star.x, star.y, 10, 0, Math.PI * 2);
          ctx.fill();
          ctx.fillStyle = "#94a3b8";
          ctx.font = "16px sans-serif";
          ctx.fillText(String(i + 1), star.x + 14, star.y - 14);
        });
        canvas.addEventListener("click", (event) => {
          const rect = canvas.getBoundingClientRect();
          const x = (event.clientX - rect.left) * (BOARD / rect.width);
          const y = (event.clientY - rect.top) * (BOARD / rect.height);
          act("/click", { x: Math.max(0, Math.min(BOARD, x)), y: Math.max(0, Math.min(BOARD, y)) });
        });
        stage.append(canvas);
      }

      function render(snap) {
        stage.replaceChildren();
        feedbackEl.textContent = snap.feedback || "";
        scoreBox.textContent = snap.phase === "start" ? "" : "Score: " + snap.score;
        if (snap.phase === "start") return renderStart(snap);
        if (snap.phase === "end") return renderEnd(snap);
        if (gameID === "connect-the-stars") return renderStars(snap);
        if (gameID === "shape-sorter") return renderShapes(snap);
        stage.append(el("p", { class: "round" }, "Round " + snap.round + " / " + snap.total_rounds));
        renderCards(snap);
      }

      function apply(snap) {
        if (!snap || snap.type !== "snapshot" || snap.seq < lastSeq) return;
        const fresh = snap.seq > lastSeq;
        lastSeq = snap.seq;
        current = snap;
        render(snap);
        if (fresh) runCues(snap.cues);
      }

      async function goToLobby() {
        await post("/exit");
        window.location.href = "/";
      }

      document.getElementById("backButton").addEventListener("click", goToLobby);

      function connect() {
        const proto = window.location.protocol === "https:" ? "wss://" : "ws://";
        const socket = new WebSocket(proto + window.location.host + "/ws/sessions/" + encodeURIComponent(sessionID));
        socket.addEventListener("message", (event) => apply(JSON.parse(event.data)));
        socket.addEventListener("close", (event) => {
          if (event.code === 1000) {
            window.location.href = "/";
            return;
          }
          setTimeout(async () => {
            const res = await fetch(api).catch(() => null);
            if (res && res.status === 404) {
              window.location.href = "/";
              return;
            }
            connect();
          }, 1000);
        });
      }
      connect();
    </script>`
