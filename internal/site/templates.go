package site

import "html/template"

// pageTmpl is the HTML shell for every rendered page. The utility classes
// mirror the Tailwind markup of the page variants: a centered prose article
// for markdown, a responsive card grid for JSON card pages, and terminal
// blocks for the not-found and parse-failed outcomes.
var pageTmpl = template.Must(template.New("page").Parse(pageTemplate))

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}} | {{.SiteName}}</title>
  <script src="https://cdn.tailwindcss.com?plugins=typography"></script>
</head>
<body class="bg-white dark:bg-gray-600">
{{if .ShowNavbar}}  <nav class="dark:bg-gray-600">
    <div class="max-w-7xl mx-auto px-2 sm:px-6 lg:px-8">
      <div class="relative flex items-center justify-between h-16">
        <div class="flex-1 flex items-center justify-center sm:items-stretch sm:justify-start">
          <a class="flex-shrink-0 flex items-center font-bold text-2xl" href="/">{{.SiteName}}</a>
          <div class="hidden sm:block sm:ml-6 absolute right-0">
            <div class="flex space-x-4">
{{range .Navigation}}              <a class="text-gray-800 dark:text-gray-200 hover:bg-gray-700 hover:text-white px-3 py-2 rounded-md text-sm font-medium" href="{{.Link}}"{{if .Target}} target="{{.Target}}"{{end}}>{{.Display}}</a>
{{end}}            </div>
          </div>
        </div>
      </div>
    </div>
  </nav>
  <br>
{{end}}{{if eq .Variant "center"}}  <section class="bg-cover bg-white dark:bg-gray-600">
    <div class="flex w-full items-center justify-center container mx-auto px-8">
      <div class="text-center">
        <div class="{{.ProseClass}}">{{.Content}}</div>
      </div>
    </div>
  </section>
{{else if eq .Variant "cards"}}  <section class="bg-cover bg-white dark:bg-gray-600 dark:text-white">
    <div class="flex h-full w-full items-center justify-center container mx-auto px-8">
      <div class="max-w-5xl text-center">
{{range .Groups}}        <h2 class="text-xl font-bold"># {{.Name}}</h2>
        <div class="mt-4 grid md:grid-cols-2 gap-2 mb-8">
{{range .Cards}}          <a class="block p-4 rounded-lg shadow-lg bg-white w-full sm:w-72 dark:bg-gray-700 hover:bg-gray-200" href="{{.URL}}" target="_blank">
            <h5 class="text-gray-900 dark:text-white text-xl leading-tight font-semibold mb-2">{{.Title}}</h5>
            <p class="text-gray-700 dark:text-gray-200 text-base mb-2">{{.Content}}</p>
            <p class="text-gray-400 dark:text-gray-500 text-base">{{.Footnote}}</p>
          </a>
{{end}}        </div>
{{end}}      </div>
    </div>
  </section>
{{else if eq .Variant "parse-failed"}}  <section class="container mx-auto px-8 text-center dark:text-white">
    <h2 class="text-2xl font-bold text-red-500">{{.ErrTitle}}</h2>
    <p class="text-gray-500 dark:text-gray-300">{{.ErrDetail}}</p>
  </section>
{{else}}  <section class="container mx-auto px-8 text-center dark:text-white">
    <p class="text-xl">Content Not Found</p>
  </section>
{{end}}{{if .ShowFooter}}  <footer class="text-center text-sm text-gray-400 mt-8 mb-4">
    <p>{{.SiteName}}{{if .Slogan}} &middot; {{.Slogan}}{{end}}</p>
  </footer>
{{end}}</body>
</html>
`

// indexTmpl is the fallback index page used when the content source has no
// page that resolves to the "index" route.
var indexTmpl = template.Must(template.New("index").Parse(indexTemplate))

const indexTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.SiteName}}</title>
  <script src="https://cdn.tailwindcss.com?plugins=typography"></script>
</head>
<body class="bg-white dark:bg-gray-600">
  <section class="container mx-auto px-8 text-center dark:text-white">
    <h1 class="text-3xl font-bold mt-16 mb-2">{{.SiteName}}</h1>
{{if .Slogan}}    <p class="text-gray-500 dark:text-gray-300 mb-8">{{.Slogan}}</p>
{{end}}    <ul class="space-y-2">
{{range .Pages}}      <li><a class="text-blue-500 hover:underline" href="{{.Href}}">{{.Route}}</a></li>
{{end}}    </ul>
  </section>
</body>
</html>
`
