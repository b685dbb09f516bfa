package layout

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/faraday-ai/faraday-web/storage/db"
)

// PageMeta contains all metadata for a page (SEO, Open Graph, Twitter, Schema.org)
type PageMeta struct {
	// Basic HTML meta
	Title        string
	Description  string
	Keywords     []string
	CanonicalURL string

	// Open Graph
	OGType        string // "website"
	OGTitle       string
	OGDescription string
	OGImageURL    string // MUST be absolute URL
	OGURL         string // MUST be absolute URL
	OGSiteName    string

	// Twitter Cards
	TwitterCard        string // "summary_large_image"
	TwitterTitle       string
	TwitterDescription string
	TwitterImageURL    string // MUST be absolute URL
	TwitterSite        string // "@handle"

	// Internal state
	SiteURL string
	Service *db.Service

	// Schema.org JSON-LD (pre-computed)
	ServiceSchemaJSON string
}

// NewPageMeta creates a PageMeta with site-wide defaults.
// Call this first, then chain .FromService() or other modifiers.
func NewPageMeta(c echo.Context, queries *db.Queries, siteURL string) PageMeta {
	ctx := context.Background()

	siteName := getConfigValue(ctx, queries, "seo_site_name", "Faraday AI")
	defaultTitle := getConfigValue(ctx, queries, "seo_default_title", "Faraday AI - AI assistants for education")
	defaultDescription := getConfigValue(ctx, queries, "seo_default_description", "AI assistants for teachers, schools, and districts")
	defaultKeywords := getConfigValue(ctx, queries, "seo_default_keywords", "AI, education, teaching assistant")
	twitterHandle := getConfigValue(ctx, queries, "seo_twitter_handle", "")

	keywords := strings.Split(defaultKeywords, ",")
	for i := range keywords {
		keywords[i] = strings.TrimSpace(keywords[i])
	}

	canonicalURL := BuildAbsoluteURL(siteURL, c.Request().URL.Path)
	defaultOGImage := BuildAbsoluteURL(siteURL, "/public/og-images/home.png")

	return PageMeta{
		Title:        defaultTitle,
		Description:  defaultDescription,
		Keywords:     keywords,
		CanonicalURL: canonicalURL,

		OGType:        "website",
		OGTitle:       defaultTitle,
		OGDescription: defaultDescription,
		OGImageURL:    defaultOGImage,
		OGURL:         canonicalURL,
		OGSiteName:    siteName,

		TwitterCard:        "summary_large_image",
		TwitterTitle:       defaultTitle,
		TwitterDescription: defaultDescription,
		TwitterImageURL:    defaultOGImage,
		TwitterSite:        twitterHandle,

		SiteURL: siteURL,
	}
}

// FromService updates PageMeta with service-specific information
func (pm PageMeta) FromService(service db.Service) PageMeta {
	title := service.Name + " - " + pm.OGSiteName

	description := service.Tagline
	if service.Description != "" {
		description = service.Description
	}

	pm.Title = title
	pm.OGTitle = service.Name
	pm.TwitterTitle = service.Name

	pm.Description = description
	pm.OGDescription = description
	pm.TwitterDescription = description

	serviceURL := fmt.Sprintf("%s/services/%s", pm.SiteURL, service.Slug)
	pm.CanonicalURL = serviceURL
	pm.OGURL = serviceURL

	cardURL := BuildAbsoluteURL(pm.SiteURL, fmt.Sprintf("/public/og-images/service-%s.png", service.Slug))
	pm.OGImageURL = cardURL
	pm.TwitterImageURL = cardURL

	pm.Service = &service
	pm.ServiceSchemaJSON = pm.generateServiceSchemaJSON(service)

	return pm
}

// WithTitle overrides the page title while keeping the site name suffix
func (pm PageMeta) WithTitle(title string) PageMeta {
	pm.Title = title + " - " + pm.OGSiteName
	pm.OGTitle = title
	pm.TwitterTitle = title
	return pm
}

// WithDescription overrides all description fields
func (pm PageMeta) WithDescription(description string) PageMeta {
	pm.Description = description
	pm.OGDescription = description
	pm.TwitterDescription = description
	return pm
}

// WithOGImage overrides the OG image URL
func (pm PageMeta) WithOGImage(imageURL string) PageMeta {
	absoluteURL := BuildAbsoluteURL(pm.SiteURL, imageURL)
	pm.OGImageURL = absoluteURL
	pm.TwitterImageURL = absoluteURL
	return pm
}

// KeywordsString returns keywords as a comma-separated string
func (pm PageMeta) KeywordsString() string {
	return strings.Join(pm.Keywords, ", ")
}

// BuildAbsoluteURL constructs an absolute URL from a path
func BuildAbsoluteURL(siteURL, path string) string {
	if path == "" {
		return siteURL
	}

	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}

	siteURL = strings.TrimRight(siteURL, "/")

	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return siteURL + path
}

// generateServiceSchemaJSON generates Schema.org SoftwareApplication JSON-LD
func (pm PageMeta) generateServiceSchemaJSON(service db.Service) string {
	data := map[string]interface{}{
		"@context":            "https://schema.org",
		"@type":               "SoftwareApplication",
		"name":                service.Name,
		"description":         pm.Description,
		"url":                 pm.OGURL,
		"applicationCategory": "EducationalApplication",
		"operatingSystem":     "Web",
		"provider": map[string]interface{}{
			"@type": "Organization",
			"name":  pm.OGSiteName,
			"url":   pm.SiteURL,
		},
	}

	if pm.OGImageURL != "" {
		data["image"] = pm.OGImageURL
	}

	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(bytes)
}

// OrganizationSchemaData returns site-wide Organization schema
func (pm PageMeta) OrganizationSchemaData() map[string]interface{} {
	return map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "Organization",
		"name":     pm.OGSiteName,
		"url":      pm.SiteURL,
		"logo":     BuildAbsoluteURL(pm.SiteURL, "/public/images/logo.png"),
	}
}

// getConfigValue retrieves a config value from the database with a fallback default
func getConfigValue(ctx context.Context, queries *db.Queries, key string, defaultValue string) string {
	value, err := queries.GetSiteConfig(ctx, key)
	if err != nil || value == "" {
		return defaultValue
	}
	return value
}
