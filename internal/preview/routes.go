package preview

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/monthlies/bulletin/internal/draft"
	"github.com/monthlies/bulletin/internal/layout"
)

// RegisterRoutes mounts the preview endpoints: the scaled document itself
// and the host page that embeds it in a sandboxed frame.
func RegisterRoutes(r chi.Router, p *Renderer) {
	r.Get("/preview/{id}", handleDocument(p))
	r.Get("/preview/{id}/host", handleHost())
}

func handleDocument(p *Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		width := 0
		if q := r.URL.Query().Get("width"); q != "" {
			if parsed, err := strconv.Atoi(q); err == nil {
				width = parsed
			}
		}

		doc, err := p.Render(r.Context(), chi.URLParam(r, "id"), width)
		if err != nil {
			status := http.StatusInternalServerError
			switch {
			case errors.Is(err, draft.ErrNotFound):
				status = http.StatusNotFound
			case errors.Is(err, layout.ErrInvalidTemplate):
				status = http.StatusBadRequest
			}
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(doc))
	}
}

func handleHost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := strings.NewReplacer(
			"{{DRAFT_ID}}", chi.URLParam(r, "id"),
			"{{BASE_WIDTH}}", strconv.Itoa(layout.BaseWidth),
			"{{BASE_HEIGHT}}", strconv.Itoa(layout.BaseHeight),
		).Replace(hostPage)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(page))
	}
}

// hostPage embeds the generated document in an iframe restricted to script
// execution only (no same-origin access, navigation or popups) and
// bridges postMessage events to the relay websocket. The preview is fully
// re-fetched on width changes and on draft edits (signalled over the same
// socket); each re-fetch replaces the whole embedded document.
const hostPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>bulletin preview</title>
<style>
body{margin:0;font-family:Georgia,serif;background:#efece6}
#stage{position:relative;max-width:760px;margin:24px auto;padding:0 16px}
#frame{width:100%;border:0;display:block;background:#fff;box-shadow:0 2px 12px rgba(0,0,0,0.12)}
#overlay{position:absolute;top:8px;right:24px;padding:6px 10px;background:rgba(47,43,38,0.85);color:#fff;border-radius:4px;font-size:13px;opacity:0;transition:opacity 0.25s ease;pointer-events:none}
#overlay.shown{opacity:1}
</style>
</head>
<body>
<div id="stage" data-tour-anchor="preview-surface">
  <div id="overlay">click a photo or the text to edit</div>
  <iframe id="frame" sandbox="allow-scripts" title="bulletin preview"></iframe>
</div>
<script>
(function () {
  var draftID = '{{DRAFT_ID}}';
  var stage = document.getElementById('stage');
  var frame = document.getElementById('frame');
  var overlay = document.getElementById('overlay');
  var hideTimer = null;
  var lastWidth = 0;

  var proto = location.protocol === 'https:' ? 'wss://' : 'ws://';
  var ws = new WebSocket(proto + location.host + '/api/relay/' + draftID);

  // Sandbox -> host: forward relayed clicks to the controller.
  window.addEventListener('message', function (ev) {
    if (ev.source !== frame.contentWindow) { return; }
    if (ws.readyState === WebSocket.OPEN) {
      ws.send(JSON.stringify(ev.data));
    }
  });

  // Host -> sandbox: menu configuration and dismissals; a "reload" hint
  // from the controller means draft state changed and the document must be
  // regenerated. Tour updates stay on this side and drive the hint overlay.
  ws.onmessage = function (ev) {
    var msg;
    try { msg = JSON.parse(ev.data); } catch (e) { return; }
    if (!msg) { return; }
    if (msg.type === 'RELOAD_PREVIEW') {
      refetch();
      return;
    }
    if (msg.type === 'TOUR_STEP') {
      if (msg.tour && msg.tour.text) {
        overlay.textContent = msg.tour.text;
        overlay.className = 'shown';
      } else {
        overlay.className = '';
      }
      return;
    }
    if (frame.contentWindow) {
      frame.contentWindow.postMessage(msg, '*');
    }
  };

  function refetch() {
    var width = Math.round(frame.getBoundingClientRect().width);
    if (width <= 0) { return; } // not measured yet; wait for layout
    lastWidth = width;
    fetch('/preview/' + draftID + '?width=' + width)
      .then(function (res) { return res.text(); })
      .then(function (doc) {
        frame.style.height = Math.round(width * {{BASE_HEIGHT}} / {{BASE_WIDTH}}) + 'px';
        frame.srcdoc = doc;
      });
  }

  var resizeTimer = null;
  new ResizeObserver(function () {
    var width = Math.round(frame.getBoundingClientRect().width);
    if (width === lastWidth) { return; }
    clearTimeout(resizeTimer);
    resizeTimer = setTimeout(refetch, 120);
  }).observe(stage);

  // Overlay hint: shown while hovering, hidden a beat after the pointer
  // leaves; re-entry cancels the pending hide.
  stage.addEventListener('mouseenter', function () {
    clearTimeout(hideTimer);
    overlay.className = 'shown';
  });
  stage.addEventListener('mouseleave', function () {
    clearTimeout(hideTimer);
    hideTimer = setTimeout(function () { overlay.className = ''; }, 1000);
  });

  refetch();
})();
</script>
</body>
</html>
`
