package preview

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Result is the preview document consumed by the test harness.
type Result struct {
	ToolResult ToolResult `json:"tool_result"`
	Branding   Branding   `json:"branding"`
}

// ToolResult mirrors the platform_info tool output.
type ToolResult struct {
	Name              string   `json:"name"`
	Version           string   `json:"version"`
	Description       string   `json:"description"`
	Tags              []string `json:"tags"`
	AgentInstructions string   `json:"agent_instructions"`
	Toolkits          []string `json:"toolkits"`

	// ToolkitDescriptions is nil (JSON null) when no toolkit carries a
	// non-blank description, distinguishing that from an empty platform.
	ToolkitDescriptions map[string]string `json:"toolkit_descriptions"`

	Features      Features      `json:"features"`
	ConfigVersion ConfigVersion `json:"config_version"`
}

// Features describes enabled platform features.
type Features struct {
	SemanticEnrichment bool `json:"semantic_enrichment"`
	QueryEnrichment    bool `json:"query_enrichment"`
	StorageEnrichment  bool `json:"storage_enrichment"`
	AuditLogging       bool `json:"audit_logging"`
	KnowledgeCapture   bool `json:"knowledge_capture"`
}

// ConfigVersion reports the config API version declared by the document
// alongside the versions this tool understands.
type ConfigVersion struct {
	APIVersion        string   `json:"api_version"`
	LatestVersion     string   `json:"latest_version"`
	SupportedVersions []string `json:"supported_versions"`
}

// Branding holds the platform-info app branding fields.
type Branding struct {
	BrandName string `json:"brand_name"`
	BrandURL  string `json:"brand_url"`
	LogoSVG   string `json:"logo_svg"`
}

// Extract assembles the preview result from a platform config document.
// Missing sections and fields read as zero values; the shape of the
// result is fixed regardless of input.
func Extract(doc *yaml.Node) *Result {
	srv := section(doc, "server")
	inj := section(doc, "injection")
	aud := section(doc, "audit")
	kn := section(doc, "knowledge")
	piCfg := section(doc, "mcpapps", "apps", "platform-info", "config")
	toolkits := section(doc, "toolkits")
	reg := DefaultRegistry()

	apiVersion := reg.Current()
	if v := mappingValue(doc, "api_version"); v != nil && v.Kind == yaml.ScalarNode && v.Tag != nullTag {
		apiVersion = v.Value
	}

	return &Result{
		ToolResult: ToolResult{
			Name:                stringAt(srv, "name"),
			Version:             stringAt(srv, "version"),
			Description:         stringAt(srv, "description"),
			Tags:                stringsAt(srv, "tags"),
			AgentInstructions:   stringAt(srv, "agent_instructions"),
			Toolkits:            mappingKeys(toolkits),
			ToolkitDescriptions: toolkitDescriptions(toolkits),
			Features: Features{
				SemanticEnrichment: truthyAt(inj, "trino_semantic_enrichment") || truthyAt(inj, "s3_semantic_enrichment"),
				QueryEnrichment:    truthyAt(inj, "datahub_query_enrichment"),
				StorageEnrichment:  truthyAt(inj, "datahub_storage_enrichment"),
				AuditLogging:       truthyAt(aud, "enabled"),
				KnowledgeCapture:   truthyAt(kn, "enabled"),
			},
			ConfigVersion: ConfigVersion{
				APIVersion:        apiVersion,
				LatestVersion:     reg.Current(),
				SupportedVersions: reg.ListSupported(),
			},
		},
		Branding: Branding{
			BrandName: stringAt(piCfg, "brand_name"),
			BrandURL:  stringAt(piCfg, "brand_url"),
			LogoSVG:   stringAt(piCfg, "logo_svg"),
		},
	}
}

// toolkitDescriptions builds the per-toolkit description map in source
// order of iteration. A toolkit contributes only when its value is a
// mapping whose description is a non-blank string; the description is
// kept untrimmed. An empty result is returned as nil so it serializes as
// JSON null.
func toolkitDescriptions(toolkits *yaml.Node) map[string]string {
	descs := map[string]string{}
	for i := 0; i+1 < len(toolkits.Content); i += 2 {
		k := toolkits.Content[i]
		v := resolved(toolkits.Content[i+1])
		if k.Kind != yaml.ScalarNode || v == nil || v.Kind != yaml.MappingNode {
			continue
		}
		d := mappingValue(v, "description")
		if d == nil || d.Kind != yaml.ScalarNode || d.Tag != "!!str" {
			continue
		}
		if strings.TrimSpace(d.Value) == "" {
			continue
		}
		descs[k.Value] = d.Value
	}
	if len(descs) == 0 {
		return nil
	}
	return descs
}

// Write serializes the result as two-space indented JSON to path,
// overwriting any existing file.
func Write(path string, r *Result) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding preview data: %w", err)
	}
	// #nosec G306 -- preview data is not sensitive
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing preview data: %w", err)
	}
	return nil
}
