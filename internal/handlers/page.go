package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Index serves the single-page dashboard UI. The page pulls its data from the
// JSON API so the two surfaces never drift apart.
func Index(c *gin.Context) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, dashboardPage)
}

const dashboardPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Sentiment Dashboard</title>
<script src="https://cdn.jsdelivr.net/npm/chart.js@4"></script>
<style>
  body { font-family: system-ui, sans-serif; margin: 0; background: #f5f6fa; color: #222; }
  header { background: #1d3557; color: #fff; padding: 1rem 2rem; }
  header h1 { margin: 0; font-size: 1.3rem; }
  .controls { padding: 1rem 2rem; display: flex; gap: 1rem; align-items: center; flex-wrap: wrap; }
  .controls input[type=text] { padding: 0.4rem; width: 16rem; }
  .controls input[type=range] { width: 10rem; }
  .warning { margin: 0 2rem; padding: 0.6rem 1rem; background: #ffe8a1; border-radius: 4px; }
  .grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(380px, 1fr)); gap: 1rem; padding: 1rem 2rem; }
  .card { background: #fff; border-radius: 6px; padding: 1rem; box-shadow: 0 1px 3px rgba(0,0,0,.1); }
  .card h2 { margin-top: 0; font-size: 1rem; }
  table { width: 100%; border-collapse: collapse; font-size: 0.85rem; }
  th, td { text-align: left; padding: 0.3rem 0.5rem; border-bottom: 1px solid #eee; }
  .cloud span { display: inline-block; margin: 0.15rem 0.3rem; }
</style>
</head>
<body>
<header><h1>Sentiment Dashboard</h1></header>
<div class="controls">
  <label>Keyword <input type="text" id="query" value=""></label>
  <label>Posts <input type="range" id="max" min="5" max="20" value="10">
    <span id="maxValue">10</span></label>
  <button id="refresh">Analyze</button>
  <a id="export" href="#">Download xlsx</a>
</div>
<div id="warnings"></div>
<div class="grid">
  <div class="card"><h2>Sentiment</h2><canvas id="sentimentChart"></canvas></div>
  <div class="card"><h2>Languages</h2><canvas id="langChart"></canvas></div>
  <div class="card"><h2>Posts per day</h2><canvas id="trendChart"></canvas></div>
  <div class="card"><h2>Frequent words</h2><div class="cloud" id="cloud"></div></div>
  <div class="card"><h2>Most liked</h2><table id="topLiked"></table></div>
  <div class="card"><h2>Most retweeted</h2><table id="topRetweeted"></table></div>
</div>
<script>
const charts = {};

function barChart(id, labels, data, label) {
  if (charts[id]) charts[id].destroy();
  charts[id] = new Chart(document.getElementById(id), {
    type: 'bar',
    data: { labels: labels, datasets: [{ label: label, data: data, backgroundColor: '#457b9d' }] },
    options: { plugins: { legend: { display: false } } }
  });
}

function lineChart(id, labels, data, label) {
  if (charts[id]) charts[id].destroy();
  charts[id] = new Chart(document.getElementById(id), {
    type: 'line',
    data: { labels: labels, datasets: [{ label: label, data: data, borderColor: '#e63946', fill: false }] },
    options: { plugins: { legend: { display: false } } }
  });
}

function fillTable(id, rows, metric) {
  const table = document.getElementById(id);
  let html = '<tr><th>Text</th><th>' + metric + '</th></tr>';
  for (const r of rows) {
    const count = metric === 'Likes' ? r.likes : r.retweets;
    html += '<tr><td>' + r.text + '</td><td>' + count + '</td></tr>';
  }
  table.innerHTML = html;
}

function fillCloud(words) {
  const max = words.length ? words[0].count : 1;
  const cloud = document.getElementById('cloud');
  cloud.innerHTML = '';
  for (const w of words) {
    const span = document.createElement('span');
    span.textContent = w.word;
    span.style.fontSize = (0.7 + 1.3 * w.count / max) + 'rem';
    cloud.appendChild(span);
  }
}

async function refresh() {
  const query = document.getElementById('query').value;
  const max = document.getElementById('max').value;
  const params = new URLSearchParams({ max_results: max });
  if (query) params.set('query', query);

  const resp = await fetch('/api/v1/dashboard?' + params);
  if (!resp.ok) {
    const body = await resp.json().catch(() => ({}));
    document.getElementById('warnings').innerHTML =
      '<div class="warning">' + (body.error || 'Request failed') + '</div>';
    return;
  }
  const data = await resp.json();

  document.getElementById('query').value = data.query;
  document.getElementById('export').href = '/api/v1/dashboard/export?' + params;
  document.getElementById('warnings').innerHTML =
    (data.warnings || []).map(w => '<div class="warning">' + w + '</div>').join('');

  barChart('sentimentChart', data.sentiments.map(s => s.label), data.sentiments.map(s => s.count), 'Posts');
  barChart('langChart', data.languages.map(l => l.lang), data.languages.map(l => l.count), 'Posts');
  lineChart('trendChart', data.trend.map(d => d.date), data.trend.map(d => d.count), 'Posts');
  fillTable('topLiked', data.top_liked, 'Likes');
  fillTable('topRetweeted', data.top_retweeted, 'Retweets');
  fillCloud(data.words);
}

document.getElementById('max').addEventListener('input', e => {
  document.getElementById('maxValue').textContent = e.target.value;
});
document.getElementById('refresh').addEventListener('click', refresh);
document.getElementById('query').addEventListener('keydown', e => {
  if (e.key === 'Enter') refresh();
});
refresh();
</script>
</body>
</html>
`
