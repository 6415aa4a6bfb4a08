package render

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/knighttour/board"
)

// HTML renders a self-contained page around the tour: title, the static
// SVG (or the animated replay when opts.Animated), and a metadata footer.
func HTML(path []board.Position, w, h int, opts Options) string {
	var sb strings.Builder

	title := fmt.Sprintf("Knight's Tour %d×%d", w, h)
	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	fmt.Fprintf(&sb, "<meta charset=\"utf-8\">\n<title>%s</title>\n", title)
	sb.WriteString(`<style>
  body { font-family: system-ui, sans-serif; margin: 2rem; color: #1e293b; }
  .meta { margin-top: 1rem; color: #555; font-size: 14px; }
  .meta span { margin-right: 1.5em; }
  .controls button { margin-right: 0.5em; }
</style>
`)
	sb.WriteString("</head>\n<body>\n")
	fmt.Fprintf(&sb, "<h1>%s</h1>\n", title)

	if opts.Animated {
		animated(&sb, path, w, h, opts)
	} else {
		sb.WriteString(SVG(path, w, h, opts))
	}

	meta(&sb, opts)
	sb.WriteString("</body>\n</html>\n")

	return sb.String()
}

// meta emits the footer line; zero-valued fields are omitted.
func meta(sb *strings.Builder, opts Options) {
	parts := make([]string, 0, 6)
	if opts.Meta.Mode != "" {
		parts = append(parts, fmt.Sprintf("<span>Mode: %s</span>", opts.Meta.Mode))
	}
	if opts.Closed {
		parts = append(parts, "<span>Closed tour</span>")
	}
	if opts.Symmetry != board.SymNone {
		parts = append(parts, fmt.Sprintf("<span>Symmetry: %s</span>", opts.Symmetry))
	}
	if opts.Meta.Trials > 0 {
		parts = append(parts, fmt.Sprintf("<span>Trials: %d</span>", opts.Meta.Trials))
	}
	if opts.Meta.Elapsed > 0 {
		parts = append(parts, fmt.Sprintf("<span>Elapsed: %s</span>", opts.Meta.Elapsed))
	}
	if opts.Meta.Seed != 0 {
		parts = append(parts, fmt.Sprintf("<span>Seed: %d</span>", opts.Meta.Seed))
	}
	if len(parts) == 0 {
		return
	}
	fmt.Fprintf(sb, "<div class=\"meta\">%s</div>\n", strings.Join(parts, ""))
}

// animated emits the empty board plus a JS replay that draws the path
// segment by segment and stamps move numbers as the knight lands.
func animated(sb *strings.Builder, path []board.Position, w, h int, opts Options) {
	c := newCanvas(w, h, opts)

	fmt.Fprintf(sb,
		"<svg id=\"board\" width=\"%d\" height=\"%d\" xmlns=\"http://www.w3.org/2000/svg\">\n",
		c.svgWidth(), c.svgHeight()+20)
	c.grid(sb)
	c.coordinates(sb)
	sb.WriteString("  <g id=\"path-lines\"></g>\n  <g id=\"move-numbers\"></g>\n</svg>\n")

	sb.WriteString(`<div class="controls">
  <button id="play">Play</button>
  <button id="reset">Reset</button>
  <label>Speed <input id="speed" type="range" min="20" max="500" value="120"></label>
</div>
`)

	// Path and geometry handed to the replay script.
	sb.WriteString("<script>\n")
	fmt.Fprintf(sb, "const cell = %d, marginX = %d;\n", c.cell, margin)
	fmt.Fprintf(sb, "const isClosed = %t;\n", opts.Closed)
	sb.WriteString("const path = [")
	for i, p := range path {
		if i > 0 {
			sb.WriteString(",")
		}
		fmt.Fprintf(sb, "[%d,%d]", p.X, p.Y)
	}
	sb.WriteString("];\n")
	sb.WriteString(`const svgNS = "http://www.w3.org/2000/svg";
const lines = document.getElementById("path-lines");
const numbers = document.getElementById("move-numbers");
const playBtn = document.getElementById("play");
const speed = document.getElementById("speed");
let step = 0, timer = null;

function centerOf(p) {
  return [marginX + p[0] * cell + cell / 2, p[1] * cell + cell / 2];
}

function stamp(i) {
  const [cx, cy] = centerOf(path[i]);
  const t = document.createElementNS(svgNS, "text");
  t.setAttribute("x", cx);
  t.setAttribute("y", cy + cell / 9);
  t.setAttribute("text-anchor", "middle");
  t.setAttribute("font-size", Math.floor(cell / 3));
  t.setAttribute("font-weight", "bold");
  t.setAttribute("fill", "#1e293b");
  t.textContent = i;
  numbers.appendChild(t);
}

function segment(a, b, dashed) {
  const [x1, y1] = centerOf(a), [x2, y2] = centerOf(b);
  const l = document.createElementNS(svgNS, "line");
  l.setAttribute("x1", x1); l.setAttribute("y1", y1);
  l.setAttribute("x2", x2); l.setAttribute("y2", y2);
  l.setAttribute("stroke", dashed ? "#ef4444" : "#2563eb");
  l.setAttribute("stroke-width", 4);
  l.setAttribute("stroke-linecap", "round");
  if (dashed) l.setAttribute("stroke-dasharray", "8,4");
  lines.appendChild(l);
}

function tick() {
  if (step === 0) stamp(0);
  if (step + 1 < path.length) {
    segment(path[step], path[step + 1], false);
    stamp(step + 1);
    step++;
  } else if (isClosed && step + 1 === path.length) {
    segment(path[path.length - 1], path[0], true);
    step++;
  } else {
    pause();
  }
}

function play() {
  pause();
  timer = setInterval(tick, 520 - speed.value);
  playBtn.textContent = "Pause";
}

function pause() {
  if (timer) clearInterval(timer);
  timer = null;
  playBtn.textContent = "Play";
}

playBtn.addEventListener("click", () => (timer ? pause() : play()));
document.getElementById("reset").addEventListener("click", () => {
  pause();
  step = 0;
  lines.replaceChildren();
  numbers.replaceChildren();
});
</script>
`)
}
