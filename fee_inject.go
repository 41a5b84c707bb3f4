package main

import (
	"errors"
	"fmt"
)

// feeEveryFromPercent converts a configured fee percentage into the submit
// stride N: every Nth submit, fleet-wide, is redirected. Percentages outside
// (0, 100] disable injection.
func feeEveryFromPercent(percent float64) uint64 {
	if percent <= 0 || percent > 100 {
		return 0
	}
	return uint64(100 / percent)
}

// feeCredential builds the worker credential substituted into a redirected
// submit. The worker suffix keeps redirected shares identifiable on the
// upstream pool's own dashboard.
func feeCredential(address, workerName string) string {
	if workerName == "" {
		return address
	}
	return address + "." + workerName
}

// rewriteSubmitCredential returns a copy of a mining.submit line with only
// params[0] (the worker/address credential) replaced. Every other field,
// including the request id, passes through unchanged so the upstream response
// still correlates to the triggering session.
func rewriteSubmitCredential(line []byte, cred string) ([]byte, error) {
	if cred == "" {
		return nil, errors.New("empty fee credential")
	}

	// Fast path: submit params are normally all strings.
	if params, ok := sniffStringParams(line, 8); ok && len(params) > 0 {
		if method, id, ok := sniffMethodAndID(line); ok && method == methodSubmit {
			out := make([]any, len(params))
			out[0] = cred
			for i := 1; i < len(params); i++ {
				out[i] = params[i]
			}
			b, err := fastJSONMarshal(StratumRequest{ID: id, Method: method, Params: out})
			if err != nil {
				return nil, err
			}
			return b, nil
		}
	}

	var env wireEnvelope
	if err := fastJSONUnmarshal(line, &env); err != nil {
		return nil, fmt.Errorf("decode submit for fee rewrite: %w", err)
	}
	if env.Method == nil || *env.Method != methodSubmit {
		return nil, errors.New("fee rewrite target is not a mining.submit")
	}
	if len(env.Params) == 0 {
		return nil, errors.New("mining.submit has no params to rewrite")
	}
	params := append([]any(nil), env.Params...)
	params[0] = cred
	b, err := fastJSONMarshal(StratumRequest{ID: env.ID, Method: *env.Method, Params: params})
	if err != nil {
		return nil, err
	}
	return b, nil
}
