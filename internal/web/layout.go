package web

import (
	"io"
)

func writePageStart(w io.Writer, title, bodyClass string) {
	_, _ = io.WriteString(w, `<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1"/>
    <title>`+esc(title)+`</title>
    <link rel="stylesheet" href="`+assetPath("/static/styles.css")+`"/>
  </head>
  <body class="`+esc(bodyClass)+`">
`)
}

func writePageEnd(w io.Writer) {
	_, _ = io.WriteString(w, `  </body>
</html>
`)
}
