// Package manifest turns declarative HCL subscription manifests into the
// static bindings the dispatcher installs at bootstrap. It is the discovery
// collaborator: the dispatcher core never depends on it, it only consumes the
// produced sequence.
//
// A manifest groups subscriptions by owning application:
//
//	application "billing" {
//	  subscription "user_created" {
//	    handler = "billing"
//	    method  = "OnUserCreated"
//	  }
//	}
//
// The application name becomes the owner of every binding it declares.
package manifest

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	cdisp "github.com/next-trace/scg-event-dispatch/contract/dispatch"
)

type fileModel struct {
	Applications []applicationBlock `hcl:"application,block"`
}

type applicationBlock struct {
	Name          string              `hcl:"name,label"`
	Subscriptions []subscriptionBlock `hcl:"subscription,block"`
}

type subscriptionBlock struct {
	Event   string `hcl:"event,label"`
	Handler string `hcl:"handler"`
	Method  string `hcl:"method"`
}

// Load parses one manifest file. When apps is non-empty it scopes the result
// to those application blocks; other applications are skipped, not errors.
func Load(path string, apps ...string) ([]cdisp.StaticBinding, error) {
	parser := hclparse.NewParser()

	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse manifest %s: %w", path, diags)
	}

	var model fileModel
	if diags := gohcl.DecodeBody(file.Body, nil, &model); diags.HasErrors() {
		return nil, fmt.Errorf("decode manifest %s: %w", path, diags)
	}

	scope := scopeSet(apps)

	var bindings []cdisp.StaticBinding

	for _, app := range model.Applications {
		if scope != nil && !scope[app.Name] {
			continue
		}

		for _, sub := range app.Subscriptions {
			if sub.Event == "" || sub.Handler == "" || sub.Method == "" {
				return nil, fmt.Errorf(
					"manifest %s: application %q subscription %q: handler and method must be non-empty",
					path, app.Name, sub.Event)
			}

			bindings = append(bindings, cdisp.StaticBinding{
				Event:   sub.Event,
				Owner:   app.Name,
				Handler: sub.Handler,
				Method:  sub.Method,
			})
		}
	}

	return bindings, nil
}

// LoadDir merges every *.hcl manifest in dir, in lexical file order.
func LoadDir(dir string, apps ...string) ([]cdisp.StaticBinding, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.hcl"))
	if err != nil {
		return nil, fmt.Errorf("scan manifests in %s: %w", dir, err)
	}

	sort.Strings(paths)

	var bindings []cdisp.StaticBinding

	for _, path := range paths {
		loaded, err := Load(path, apps...)
		if err != nil {
			return nil, err
		}

		bindings = append(bindings, loaded...)
	}

	return bindings, nil
}

func scopeSet(apps []string) map[string]bool {
	if len(apps) == 0 {
		return nil
	}

	set := make(map[string]bool, len(apps))
	for _, a := range apps {
		set[a] = true
	}

	return set
}
