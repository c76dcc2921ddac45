package toolbox

// Helpers for pulling typed values out of the decoded JSON argument map.
// Numbers arrive as float64 and arrays as []interface{}.

func stringArg(args map[string]interface{}, key string) string {
	if val, ok := args[key].(string); ok {
		return val
	}
	return ""
}

func stringSliceArg(args map[string]interface{}, key string) []string {
	raw, ok := args[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

func int64Arg(args map[string]interface{}, key string, fallback int64) int64 {
	switch val := args[key].(type) {
	case float64:
		if val > 0 {
			return int64(val)
		}
	case int:
		if val > 0 {
			return int64(val)
		}
	}
	return fallback
}

func mapArg(args map[string]interface{}, key string) map[string]interface{} {
	if val, ok := args[key].(map[string]interface{}); ok {
		return val
	}
	return nil
}
