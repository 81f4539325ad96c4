package web

const styleCSS = `
:root { --fg: #1f2937; --muted: #6b7280; --line: #e5e7eb; --bg: #f9fafb; --accent: #1d4ed8; }
* { box-sizing: border-box; }
body { margin: 0; font-family: system-ui, "Apple SD Gothic Neo", "Noto Sans KR", sans-serif; color: var(--fg); background: var(--bg); }
main { max-width: 960px; margin: 0 auto; padding: 24px 16px 64px; }
a { color: var(--accent); text-decoration: none; }
button, .button { display: inline-block; padding: 6px 12px; border: 1px solid var(--line); border-radius: 6px; background: #fff; color: var(--fg); cursor: pointer; font: inherit; }
button.primary, .button.primary { background: var(--accent); border-color: var(--accent); color: #fff; }
button.danger, .button.danger { color: #b91c1c; border-color: #fecaca; }
form.inline { display: inline; }
.muted { color: var(--muted); }
.topbar { display: flex; align-items: center; gap: 16px; padding: 10px 16px; background: #fff; border-bottom: 1px solid var(--line); }
.topbar nav a { margin-right: 12px; color: var(--fg); }
.topbar nav a.active { color: var(--accent); font-weight: 600; }
.topbar .spacer { flex: 1; }
.brand { font-weight: 700; color: var(--fg); }
.langs a { margin: 0 2px; color: var(--muted); text-transform: uppercase; font-size: 12px; }
.langs a.active { color: var(--accent); font-weight: 700; }
.alert { margin: 12px auto 0; max-width: 960px; padding: 10px 14px; border-radius: 6px; background: #fef2f2; border: 1px solid #fecaca; color: #7f1d1d; display: flex; gap: 8px; }
.alert .dismiss { margin-left: auto; }
.notice { padding: 10px 14px; border-radius: 6px; background: #eff6ff; border: 1px solid #bfdbfe; margin-bottom: 12px; }
.panel { background: #fff; border: 1px solid var(--line); border-radius: 8px; padding: 16px; margin: 16px 0; }
.panel.login { max-width: 420px; margin: 64px auto; text-align: center; }
.token-login { display: grid; gap: 8px; margin-top: 24px; text-align: left; }
.steps { display: flex; gap: 8px; list-style: none; padding: 0; }
.steps li { color: var(--muted); }
.steps li.current { color: var(--accent); font-weight: 600; }
.bar { height: 8px; background: var(--line); border-radius: 4px; overflow: hidden; }
.bar.small { height: 6px; flex: 1; }
.bar .fill { height: 100%; background: var(--accent); }
.upload { display: flex; flex-wrap: wrap; gap: 8px; align-items: center; }
pre { white-space: pre-wrap; word-break: break-word; }
.gauge { margin: 16px 0; }
.gauge.big .bar { height: 14px; }
.gauge-head { display: flex; justify-content: space-between; margin-bottom: 6px; }
.gauge-head .level { font-weight: 700; }
.legend { display: flex; justify-content: space-between; font-size: 12px; margin-top: 4px; opacity: .6; }
.legend .active { opacity: 1; font-weight: 700; }
.dim { display: flex; align-items: center; gap: 8px; margin: 4px 0; }
.dim-name { width: 160px; }
.dim-score { width: 32px; text-align: right; }
.meta { display: grid; grid-template-columns: max-content 1fr; gap: 4px 16px; }
.meta dt { color: var(--muted); }
.meta dd { margin: 0; }
.tag { display: inline-block; padding: 1px 8px; margin: 2px; border-radius: 10px; background: #eef2ff; font-size: 12px; }
.tag.risk { background: #fef2f2; }
.tag.party { background: #ecfdf5; }
.tabs { display: flex; gap: 4px; border-bottom: 1px solid var(--line); margin: 16px 0; }
.tabs a { padding: 8px 12px; color: var(--muted); border-bottom: 2px solid transparent; }
.tabs a.active { color: var(--accent); border-bottom-color: var(--accent); }
.badge { display: inline-block; min-width: 20px; padding: 0 6px; border-radius: 10px; background: var(--line); font-size: 12px; text-align: center; }
.clause { background: #fff; border: 1px solid var(--line); border-left: 4px solid; border-radius: 6px; margin: 8px 0; }
.clause-head, .clause-head button { display: flex; width: 100%; gap: 8px; align-items: center; border: 0; background: none; padding: 10px 12px; text-align: left; cursor: pointer; }
.clause-id { font-family: monospace; color: var(--muted); }
.clause-title { flex: 1; font-weight: 600; }
.risk-pill { color: #fff; padding: 1px 8px; border-radius: 10px; font-size: 12px; white-space: nowrap; }
.clause-body { padding: 0 12px 12px; }
.clause-section h4, .tags h4 { margin: 12px 0 4px; font-size: 14px; }
.terms { width: 100%; border-collapse: collapse; }
.terms th, .terms td { border-bottom: 1px solid var(--line); padding: 6px 8px; text-align: left; }
.raw-json pre { padding: 12px; border-radius: 6px; overflow-x: auto; }
.filters { display: flex; gap: 8px; }
.filters input { flex: 1; }
.documents { list-style: none; padding: 0; }
.document { background: #fff; border: 1px solid var(--line); border-left: 4px solid; border-radius: 6px; padding: 12px; margin: 8px 0; }
.document .title { font-weight: 600; margin-right: 8px; }
.document .date { color: var(--muted); font-size: 12px; margin-left: 8px; }
.document .actions { display: flex; gap: 8px; }
.star { font-size: 16px; }
.ask { display: grid; gap: 8px; }
.answer { background: #fff; border: 1px solid var(--line); border-radius: 8px; padding: 12px 16px; margin: 12px 0; }
.answer .question { margin-top: 0; }
.answer .date { color: var(--muted); font-size: 12px; }
`
