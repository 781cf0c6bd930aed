package dashboard

import "html/template"

// Page is the dashboard template. Charts are drawn client-side by
// Chart.js over the series embedded as JSON; the server only supplies
// data. Styling mirrors the clinic's original dashboard.
var Page = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>HealthSync | Patient Vitals</title>
<script src="https://cdn.jsdelivr.net/npm/chart.js@4"></script>
<style>
  body { background-color: #f0f2f5; padding: 20px; min-height: 100vh; font-family: Arial, sans-serif; margin: 0; }
  h1 { text-align: center; color: #2c3e50; margin-bottom: 30px; }
  .card { background: white; padding: 25px; border-radius: 15px; margin-bottom: 25px; box-shadow: 0 8px 25px rgba(0,0,0,0.1); }
  .card h3 { color: #2c3e50; margin-top: 0; }
  .card p { font-size: 16px; color: #34495e; }
  .kpi-row { display: flex; gap: 20px; margin-bottom: 30px; }
  .kpi { padding: 20px; border-radius: 15px; flex: 1; text-align: center; color: black; box-shadow: 0 6px 15px rgba(0,0,0,0.1); }
  .kpi h4 { margin: 0 0 10px 0; }
  .kpi h2 { font-size: 28px; font-weight: bold; margin: 0; }
  .chart-card { background: white; padding: 20px; border-radius: 15px; margin-bottom: 25px; box-shadow: 0 6px 15px rgba(0,0,0,0.08); }
  .error { color: red; font-weight: bold; font-size: 18px; }
</style>
</head>
<body>
<h1>HealthSync &ndash; Patient Vitals Dashboard</h1>
{{if .Error}}
<div class="error">{{.Error}}</div>
{{else}}
<div class="card">
  <h3>Patient Information</h3>
  <p>Name: {{.Name}}</p>
  <p>Gender: {{.Gender}}</p>
  <p>Age: {{.Age}} years</p>
  <p>Blood Group: {{.BloodGroup}}</p>
</div>

<div class="kpi-row">
  <div class="kpi" style="background: #ff7675;">
    <h4>Latest Heart Rate</h4>
    <h2>{{.LatestHeartRate}}</h2>
  </div>
  <div class="kpi" style="background: #fdcb6e;">
    <h4>Latest Blood Pressure</h4>
    <h2>{{.LatestBloodPressure}}</h2>
  </div>
  <div class="kpi" style="background: #55efc4;">
    <h4>SpO&#8322;</h4>
    <h2>{{.LatestSpO2}}</h2>
  </div>
</div>

<div class="chart-card"><canvas id="hr"></canvas></div>
<div class="chart-card"><canvas id="bp"></canvas></div>
<div class="chart-card"><canvas id="temp"></canvas></div>
<div class="chart-card"><canvas id="spo2"></canvas></div>
<div class="chart-card"><canvas id="resp"></canvas></div>

<script>
const series = {{.Series}};

function lineChart(id, title, datasets) {
  new Chart(document.getElementById(id), {
    type: "line",
    data: { labels: series.labels, datasets: datasets },
    options: {
      responsive: true,
      plugins: { title: { display: true, text: title } },
      spanGaps: true
    }
  });
}

lineChart("hr", "Heart Rate (BPM)", [
  { label: "Heart Rate", data: series.heart_rate, borderColor: "#3498db", backgroundColor: "#3498db", borderWidth: 3 }
]);
lineChart("bp", "Blood Pressure (mmHg)", [
  { label: "Systolic BP", data: series.systolic, borderColor: "#e74c3c", backgroundColor: "#e74c3c", borderWidth: 3 },
  { label: "Diastolic BP", data: series.diastolic, borderColor: "#f1c40f", backgroundColor: "#f1c40f", borderWidth: 3 }
]);
lineChart("temp", "Body Temperature (°C)", [
  { label: "Temperature", data: series.temperature, borderColor: "#9b59b6", backgroundColor: "#9b59b6", borderWidth: 3 }
]);
lineChart("spo2", "Oxygen Saturation (%)", [
  { label: "SpO2", data: series.oxygen_saturation, borderColor: "#1abc9c", backgroundColor: "#1abc9c", borderWidth: 3 }
]);
lineChart("resp", "Respiratory Rate (breaths/min)", [
  { label: "Respiratory Rate", data: series.respiratory_rate, borderColor: "#34495e", backgroundColor: "#34495e", borderWidth: 3 }
]);
</script>
{{end}}
</body>
</html>
`))
