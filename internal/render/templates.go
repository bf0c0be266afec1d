package render

// ── Base layout ───────────────────────────────────────────────────────────────

const tmplBase = `
{{define "base"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width,initial-scale=1">
<title>Event Board</title>
<style>
*{box-sizing:border-box;margin:0;padding:0}
body{font-family:-apple-system,'Segoe UI',Roboto,sans-serif;background:#f6f8fa;color:#1f2328;font-size:15px;line-height:1.5}
header{background:#24292f;color:#fff;padding:16px 24px}
header h1{font-size:20px;font-weight:700}
main{max-width:960px;margin:0 auto;padding:24px}
.filters{display:flex;gap:8px;margin-bottom:20px;flex-wrap:wrap}
.filters input[type=search]{flex:1;min-width:200px;padding:8px 12px;border:1px solid #d0d7de;border-radius:6px;font-size:14px}
.filters select{padding:8px 12px;border:1px solid #d0d7de;border-radius:6px;font-size:14px;background:#fff}
.filters button{padding:8px 16px;border:none;border-radius:6px;background:#1f6feb;color:#fff;font-size:14px;cursor:pointer}
.filters button:hover{background:#1a5fd0}
.cards{display:grid;grid-template-columns:repeat(auto-fill,minmax(280px,1fr));gap:16px}
.card{background:#fff;border:1px solid #d0d7de;border-radius:6px;padding:16px}
.card h2{font-size:17px;font-weight:600;margin-bottom:4px}
.card .when{font-size:13px;color:#57606a;margin-bottom:8px}
.card .desc{font-size:14px;margin-bottom:10px}
.tags{display:flex;gap:6px;flex-wrap:wrap}
.tag{display:inline-block;padding:1px 8px;border-radius:10px;font-size:12px;background:#ddf4ff;color:#0969da}
.notice{grid-column:1/-1;padding:24px;text-align:center;color:#57606a;background:#fff;border:1px dashed #d0d7de;border-radius:6px}
.notice.error{color:#cf222e;border-color:#cf222e}
</style>
</head>
<body>
<header><h1>Event Board</h1></header>
<main>
{{template "content" .}}
</main>
</body>
</html>{{end}}`

// ── Board page ────────────────────────────────────────────────────────────────

const tmplBoard = `
{{define "content"}}{{if .Error}}<section id="events" class="cards">
<p class="notice error">{{.Error}}</p>
</section>{{else}}<form class="filters" method="get" action="/">
<input type="search" name="q" value="{{.Query}}" placeholder="Search events...">
<select name="tag">
<option value="">All tags</option>
{{range .Tags}}<option value="{{.}}"{{if eq . $.SelectedTag}} selected{{end}}>{{.}}</option>
{{end}}</select>
<button type="submit">Filter</button>
</form>
<section id="events" class="cards">
{{if not .Events}}<p class="notice">No events found.</p>
{{else}}{{range .Events}}<article class="card">
<h2>{{.Title}}</h2>
<p class="when">{{fmtDate .Date}}{{if .Location}} &middot; {{.Location}}{{end}}</p>
<p class="desc">{{.Description}}</p>
<div class="tags">{{range .Tags}}<span class="tag">{{.}}</span>{{end}}</div>
</article>
{{end}}{{end}}</section>{{end}}{{end}}`
