package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	lambdasdk "github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"

	"github.com/liserjrqlxue/dna2aa/pkg/codon"
)

const (
	// WarmupSource identifies scheduled warmup events
	WarmupSource = "warmup"

	// MaxWarmupConcurrency upper bound of self-invocations per warmup event
	MaxWarmupConcurrency = 10

	// WarmupDelay keeps the instance busy long enough for self-invocations to land elsewhere
	WarmupDelay = 75 * time.Millisecond

	// warmupCanary translated on every warmup, MFK*
	warmupCanary = "ATGTTTAAATAG"
)

// WarmupEvent scheduled payload {"source":"warmup","concurrency":N}
type WarmupEvent struct {
	Source      string `json:"source"`
	Concurrency int    `json:"concurrency"`
}

type WarmupResponse struct {
	Status          string `json:"status"`
	InstancesWarmed int    `json:"instancesWarmed"`
	// Canary one-letter protein of warmupCanary, proves the codon table is loaded
	Canary string `json:"canary"`
}

// invoker the part of the Lambda client used for self-invocation
type invoker interface {
	Invoke(ctx context.Context, params *lambdasdk.InvokeInput, optFns ...func(*lambdasdk.Options)) (*lambdasdk.InvokeOutput, error)
}

// newInvoker builds the Lambda client, replaced in tests
var newInvoker = func(ctx context.Context) (invoker, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}
	return lambdasdk.NewFromConfig(cfg), nil
}

// IsWarmupEvent checks if the event is a warmup event.
// concurrency may be a JSON number or a numeric string, fractions are truncated,
// anything else counts as 0; the result is clamped to [0, MaxWarmupConcurrency].
func IsWarmupEvent(event json.RawMessage) (*WarmupEvent, bool) {
	var eventMap map[string]interface{}
	if err := json.Unmarshal(event, &eventMap); err != nil {
		return nil, false
	}
	source, ok := eventMap["source"].(string)
	if !ok || source != WarmupSource {
		return nil, false
	}

	var concurrency int
	switch v := eventMap["concurrency"].(type) {
	case float64:
		concurrency = int(v)
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			concurrency = int(f)
		}
	}
	if concurrency < 0 {
		concurrency = 0
	}
	if concurrency > MaxWarmupConcurrency {
		concurrency = MaxWarmupConcurrency
	}
	return &WarmupEvent{Source: source, Concurrency: concurrency}, true
}

// HandleWarmup translates the canary and self-invokes Concurrency more
// instances asynchronously
func HandleWarmup(ctx context.Context, warmup *WarmupEvent) (interface{}, error) {
	var (
		instancesWarmed = 1
		concurrency     = min(warmup.Concurrency, MaxWarmupConcurrency)
		records         = codon.Translate(warmupCanary, codon.Standard())
		canary          = make([]byte, len(records))
	)
	for i, r := range records {
		canary[i] = r.AminoAcid.Short()
	}

	if concurrency > 0 {
		client, err := newInvoker(ctx)
		if err == nil {
			err = selfInvoke(ctx, client, os.Getenv("AWS_LAMBDA_FUNCTION_NAME"), concurrency)
		}
		if err != nil {
			slog.WarnContext(ctx, "Warmup self-invoke failed", "concurrency", concurrency, "err", err)
		} else {
			instancesWarmed += concurrency
		}
	}

	time.Sleep(WarmupDelay)

	return WarmupResponse{
		Status:          "warm",
		InstancesWarmed: instancesWarmed,
		Canary:          string(canary),
	}, nil
}

// selfInvoke fires count asynchronous warmup invocations of functionName and
// returns the first error reported
func selfInvoke(ctx context.Context, client invoker, functionName string, count int) error {
	// children get concurrency 0, no recursion
	payload, err := json.Marshal(WarmupEvent{Source: WarmupSource})
	if err != nil {
		return err
	}

	var (
		wg        sync.WaitGroup
		invokeErr error
		errMu     sync.Mutex
	)
	for i := 0; i < count; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := client.Invoke(ctx, &lambdasdk.InvokeInput{
				FunctionName:   aws.String(functionName),
				InvocationType: types.InvocationTypeEvent,
				Payload:        payload,
			})
			if err != nil {
				errMu.Lock()
				if invokeErr == nil {
					invokeErr = err
				}
				errMu.Unlock()
			}
		}()
	}
	wg.Wait()
	return invokeErr
}
