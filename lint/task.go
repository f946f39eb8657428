package lint

import (
	"fmt"

	"github.com/erraggy/paralint/internal/jsonvalue"
	"github.com/erraggy/paralint/internal/pathutil"
)

var taskKnownKeys = []string{
	"processor", "metadata", "source_policy", "task_spec", "input",
	"previous_interaction_id", "mcp_servers", "enable_events", "webhook",
}

func (r *run) task(root jsonvalue.Value) {
	const p = pathutil.Root

	pp := pathutil.Key(p, "processor")
	if proc, ok := root.Lookup("processor"); !ok {
		r.c.AddError(pp, msgIsRequired)
	} else if s, isStr := proc.Str(); !isStr || isBlank(s) {
		r.c.AddError(pp, "must be a non-empty string")
	} else if !r.tables.isKnownProcessor(s) {
		r.c.AddWarning(pp, "processor not in known snapshot set; verify against docs before shipping")
	}

	ip := pathutil.Key(p, "input")
	if input, ok := root.Get("input"); !ok {
		r.c.AddError(ip, msgIsRequired)
	} else if k := input.Kind(); k != jsonvalue.KindString && k != jsonvalue.KindObject {
		r.c.AddError(ip, "must be a string or JSON object")
	}

	if meta, ok := root.Lookup("metadata"); ok {
		r.metadata(meta, pathutil.Key(p, "metadata"))
	}

	if sp, ok := root.Lookup("source_policy"); ok {
		r.sourcePolicy(sp, pathutil.Key(p, "source_policy"), false)
	}

	if prev, ok := root.Lookup("previous_interaction_id"); ok && prev.Kind() != jsonvalue.KindString {
		r.c.AddError(pathutil.Key(p, "previous_interaction_id"), msgMustBeString)
	}

	if spec, ok := root.Get("task_spec"); ok {
		r.taskSpec(spec, root, pathutil.Key(p, "task_spec"))
	}

	if events, ok := root.Get("enable_events"); ok {
		ep := pathutil.Key(p, "enable_events")
		if !events.IsNull() {
			r.boolean(events, ep)
		}
		r.betaGate("enable_events", ep, events.Truthy())
	}

	if servers, ok := root.Get("mcp_servers"); ok {
		mp := pathutil.Key(p, "mcp_servers")
		r.mcpServers(servers, mp)
		r.betaGate("mcp_servers", mp, servers.Truthy())
	}

	if hook, ok := root.Get("webhook"); ok {
		wp := pathutil.Key(p, "webhook")
		r.webhook(hook, wp)
		r.betaGate("webhook", wp, hook.Truthy())
	}

	r.unknownKeys(root, p, taskKnownKeys, "unknown field for current "+KindTask.snapshot()+" snapshot; verify docs/OpenAPI")
}

// metadata checks a flat map of short keys to scalar values.
func (r *run) metadata(v jsonvalue.Value, path string) {
	if !r.object(v, path) {
		return
	}
	lim := r.limits()
	for _, m := range v.Members() {
		kp := pathutil.Key(path, m.Key)
		if jsonvalue.RuneLen(m.Key) > lim.MaxMetadataKeyChars {
			r.c.AddWarning(kp, fmt.Sprintf("key length exceeds %d (OpenAPI docs note a short-key limit)", lim.MaxMetadataKeyChars))
		}
		switch m.Value.Kind() {
		case jsonvalue.KindString, jsonvalue.KindNumber, jsonvalue.KindBool:
		default:
			r.c.AddError(kp, "value must be string/number/integer/boolean")
			continue
		}
		if jsonvalue.RuneLen(m.Value.Display()) > lim.MaxMetadataValueChars {
			r.c.AddWarning(kp, fmt.Sprintf("value length exceeds %d characters when stringified", lim.MaxMetadataValueChars))
		}
	}
}

// mcpServers checks the list of remote MCP server definitions.
func (r *run) mcpServers(v jsonvalue.Value, path string) {
	if v.IsNull() {
		return
	}
	if v.Kind() != jsonvalue.KindArray {
		r.c.AddError(path, "must be an array")
		return
	}
	for i, item := range v.Elems() {
		p := pathutil.Index(path, i)
		if !r.object(item, p) {
			continue
		}
		r.requiredNonEmpty(item, "url", p)
		r.requiredNonEmpty(item, "name", p)

		if t, ok := item.Lookup("type"); ok {
			if s, _ := t.Str(); s != "url" {
				r.c.AddWarning(pathutil.Key(p, "type"), "OpenAPI currently documents MCP server type as constant 'url'")
			}
		}

		if headers, ok := item.Lookup("headers"); ok {
			hp := pathutil.Key(p, "headers")
			if headers.Kind() != jsonvalue.KindObject {
				r.c.AddError(hp, "must be an object mapping header names to strings")
			} else {
				for _, h := range headers.Members() {
					if h.Value.Kind() != jsonvalue.KindString {
						r.c.AddError(hp, "header keys and values must be strings")
						break
					}
				}
			}
		}

		if tools, ok := item.Lookup("allowed_tools"); ok && !stringArray(tools) {
			r.c.AddError(pathutil.Key(p, "allowed_tools"), msgStringArray)
		}
	}
}

// webhook checks the completion webhook target and its event filter.
func (r *run) webhook(v jsonvalue.Value, path string) {
	if v.IsNull() || !r.object(v, path) {
		return
	}
	r.requiredNonEmpty(v, "url", path)

	events, ok := v.Lookup("event_types")
	if !ok {
		return
	}
	ep := pathutil.Key(path, "event_types")
	if !stringArray(events) {
		r.c.AddError(ep, msgStringArray)
		return
	}
	for i, e := range events.Elems() {
		if s, _ := e.Str(); s != WebhookStatusEvent {
			r.c.AddWarning(pathutil.Index(ep, i), fmt.Sprintf("OpenAPI currently documents only '%s'", WebhookStatusEvent))
		}
	}
}
