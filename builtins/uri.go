package builtins

import (
	"net/url"
	"strings"

	"github.com/go-jsgo/jsgo/runtime"
)

// installURI mirrors the original evaluator's two-phase
// `uri::init(global)` hook: rather than returning a namespace object
// like the other built-ins, it installs its functions straight onto
// the global object, grounded on the teacher's globalEncodeURI family
// in globals.go (net/url-based), trimmed to the four URI functions —
// `eval`/`escape`/`unescape` have no host to dispatch `eval` through
// in this architecture and are dropped.
func installURI(global *runtime.Object) {
	setMethod(global, "encodeURI", uriEncodeURI)
	setMethod(global, "decodeURI", uriDecodeURI)
	setMethod(global, "encodeURIComponent", uriEncodeURIComponent)
	setMethod(global, "decodeURIComponent", uriDecodeURIComponent)
}

const uriReservedUnescaped = ";,/?:@&=+$-_.!~*'()#"
const uriComponentUnescaped = "-_.!~*'()"

func encodeURIHelper(s, safe string) string {
	const upperHex = "0123456789ABCDEF"
	var sb strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || strings.ContainsRune(safe, r) {
			sb.WriteRune(r)
		} else {
			for _, b := range []byte(string(r)) {
				sb.WriteByte('%')
				sb.WriteByte(upperHex[b>>4])
				sb.WriteByte(upperHex[b&0x0F])
			}
		}
	}
	return sb.String()
}

func uriEncodeURI(_ *runtime.Value, args []*runtime.Value) (*runtime.Value, *runtime.Value) {
	return runtime.NewString(encodeURIHelper(runtime.ToString(arg(args, 0)), uriReservedUnescaped)), nil
}

func uriEncodeURIComponent(_ *runtime.Value, args []*runtime.Value) (*runtime.Value, *runtime.Value) {
	return runtime.NewString(encodeURIHelper(runtime.ToString(arg(args, 0)), uriComponentUnescaped)), nil
}

func uriDecodeURI(_ *runtime.Value, args []*runtime.Value) (*runtime.Value, *runtime.Value) {
	decoded, err := url.PathUnescape(runtime.ToString(arg(args, 0)))
	if err != nil {
		return nil, runtime.NewString("URIError: URI malformed")
	}
	return runtime.NewString(decoded), nil
}

func uriDecodeURIComponent(_ *runtime.Value, args []*runtime.Value) (*runtime.Value, *runtime.Value) {
	decoded, err := url.PathUnescape(runtime.ToString(arg(args, 0)))
	if err != nil {
		return nil, runtime.NewString("URIError: URI malformed")
	}
	return runtime.NewString(decoded), nil
}
