package handlers

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"

	"github.com/n8nup/n8nup/internal/util/naming"
)

// probeTimeout bounds the reachability check so a dead deployment does not
// hang the status command.
const probeTimeout = 10 * time.Second

// probeService issues a GET against the service URL (for testing injection).
var probeService = func(ctx context.Context, url string) error {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("service responded with %s", resp.Status)
	}
	return nil
}

// Status reports the deployment's current AWS state without changing it.
// With probe set, it additionally issues an HTTPS request against the
// service URL so an unreachable deployment is not mistaken for a healthy
// one.
func Status(ctx context.Context, configPath string, probe bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	client, err := newInfraClient(ctx, cfg.Region)
	if err != nil {
		return err
	}

	out := os.Stdout
	fmt.Fprintf(out, "deployment: %s (%s)\n", cfg.Name, cfg.Region)

	group, err := client.GetSecurityGroup(ctx, naming.SecurityGroup(cfg.Name))
	if err != nil {
		return err
	}
	if group == nil {
		fmt.Fprintln(out, "security group: not found")
	} else {
		fmt.Fprintf(out, "security group: %s\n", awssdk.ToString(group.GroupId))
	}

	instance, err := client.GetInstanceByName(ctx, naming.Instance(cfg.Name))
	if err != nil {
		return err
	}
	if instance == nil {
		fmt.Fprintln(out, "instance: not found")
		return nil
	}

	fmt.Fprintf(out, "instance: %s (%s)\n", awssdk.ToString(instance.InstanceId), instance.State.Name)
	if ip := awssdk.ToString(instance.PublicIpAddress); ip != "" {
		fmt.Fprintf(out, "address: %s\n", ip)
	}

	url := "https://" + cfg.Domain
	fmt.Fprintf(out, "url: %s\n", url)

	if probe {
		if err := probeService(ctx, url); err != nil {
			fmt.Fprintf(out, "probe: unreachable\n")
			return fmt.Errorf("service at %s is not reachable: %w", url, err)
		}
		fmt.Fprintln(out, "probe: reachable")
	}

	return nil
}
