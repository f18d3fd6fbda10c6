package static

// This file is generated! DO NOT EDIT

var WebserviceFileModes = map[string]int{
	".env.example.ws.template":       420, /* 0644 */
	".flake8":                        420, /* 0644 */
	".gitignore":                     420, /* 0644 */
	"Dockerfile":                     420, /* 0644 */
	"MANIFEST.yaml":                  420, /* 0644 */
	"Makefile.ws.template":           420, /* 0644 */
	"README.md.ws.template":          420, /* 0644 */
	"deploy/.gitkeep":                420, /* 0644 */
	"deploy/entrypoint.sh":           493, /* 0755 */
	"docker-compose.yml.ws.template": 420, /* 0644 */
	"gunicorn.conf.py":               420, /* 0644 */
	"main.py":                        420, /* 0644 */
	"pyproject.toml.ws.template":     420, /* 0644 */
	"requirements.txt":               420, /* 0644 */
	"src/__init__.py":                420, /* 0644 */
	"src/config/__init__.py":         420, /* 0644 */
	"src/secrets/.gitkeep":           420, /* 0644 */
}
