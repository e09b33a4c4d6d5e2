package userdata

import "fmt"

// SitePath is where the reverse-proxy site descriptor lands on the instance.
const SitePath = "/etc/nginx/sites-available/n8n"

// siteTemplate forwards every path to the local service port. The Upgrade
// and Connection headers keep websocket sessions working through the proxy;
// the X-* headers preserve client identity for webhook handling.
const siteTemplate = `server {
    listen 80;
    server_name %s;

    location / {
        proxy_pass http://127.0.0.1:%d;
        proxy_http_version 1.1;
        proxy_set_header Upgrade $http_upgrade;
        proxy_set_header Connection "upgrade";
        proxy_set_header Host $host;
        proxy_set_header X-Real-IP $remote_addr;
        proxy_set_header X-Forwarded-For $proxy_add_x_forwarded_for;
        proxy_set_header X-Forwarded-Proto $scheme;
        proxy_read_timeout 300s;
    }
}
`

// NginxSite renders the reverse-proxy site descriptor for the given domain
// and upstream port.
func NginxSite(domain string, port int) string {
	return fmt.Sprintf(siteTemplate, domain, port)
}
