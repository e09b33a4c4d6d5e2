package e2e

import (
	"context"
	"fmt"
	"os"
	"time"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/n8nup/n8nup/internal/config"
	"github.com/n8nup/n8nup/internal/platform/aws"
	"github.com/n8nup/n8nup/internal/provisioning"
	"github.com/n8nup/n8nup/internal/provisioning/address"
	"github.com/n8nup/n8nup/internal/provisioning/compute"
	"github.com/n8nup/n8nup/internal/provisioning/destroy"
	"github.com/n8nup/n8nup/internal/provisioning/network"
	"github.com/n8nup/n8nup/internal/provisioning/preflight"
	"github.com/n8nup/n8nup/internal/util/naming"
)

// The lifecycle spec provisions real AWS resources and tears them down.
// It only runs when the environment is explicitly configured:
//
//	N8NUP_E2E_REGION    target region (gates the suite)
//	N8NUP_E2E_KEY_NAME  an existing EC2 key pair name
//	N8NUP_E2E_DOMAIN    a domain under test control
//	N8NUP_E2E_EMAIL     certificate contact address
var _ = Describe("deployment lifecycle", Serial, func() {
	var (
		ctx    context.Context
		cfg    *config.Config
		client *aws.RealClient
	)

	BeforeEach(func() {
		region := os.Getenv("N8NUP_E2E_REGION")
		if region == "" {
			Skip("N8NUP_E2E_REGION not set")
		}

		cfg = &config.Config{
			Name:    fmt.Sprintf("e2e-%d", time.Now().Unix()%100000),
			Region:  region,
			KeyName: os.Getenv("N8NUP_E2E_KEY_NAME"),
			Domain:  os.Getenv("N8NUP_E2E_DOMAIN"),
			Email:   os.Getenv("N8NUP_E2E_EMAIL"),
			Database: config.DatabaseConfig{
				Host:     "db.invalid",
				User:     "n8n",
				Password: "e2e-placeholder",
			},
			EncryptionKey: "e2e-0123456789abcdef0123456789ab",
		}
		cfg.ApplyDefaults()

		ctx = context.Background()
		var err error
		client, err = aws.NewRealClient(ctx, region)
		Expect(err).NotTo(HaveOccurred())
	})

	It("provisions, converges, and destroys", func() {
		pCtx := provisioning.NewContext(ctx, cfg, client)
		phases := []provisioning.Phase{
			preflight.NewProvisioner(),
			network.NewProvisioner(),
			compute.NewProvisioner(),
			address.NewProvisioner(),
		}

		DeferCleanup(func() {
			cleanupCtx := provisioning.NewContext(context.Background(), cfg, client)
			Expect(destroy.NewProvisioner().Provision(cleanupCtx)).To(Succeed())

			gone, err := client.GetInstanceByName(context.Background(), naming.Instance(cfg.Name))
			Expect(err).NotTo(HaveOccurred())
			Expect(gone).To(BeNil())
		})

		Expect(provisioning.RunPhases(pCtx, phases)).To(Succeed())
		Expect(pCtx.State.InstanceCreated).To(BeTrue())
		Expect(pCtx.State.PublicIP).NotTo(BeEmpty())

		By("exposing only the fixed allow-list")
		group, err := client.GetSecurityGroup(ctx, naming.SecurityGroup(cfg.Name))
		Expect(err).NotTo(HaveOccurred())
		Expect(group).NotTo(BeNil())

		var ports []int32
		for _, perm := range group.IpPermissions {
			ports = append(ports, awssdk.ToInt32(perm.FromPort))
		}
		Expect(ports).To(ConsistOf(int32(22), int32(80), int32(443)))

		By("converging on a second run without relaunching")
		secondCtx := provisioning.NewContext(ctx, cfg, client)
		Expect(provisioning.RunPhases(secondCtx, phases)).To(Succeed())
		Expect(secondCtx.State.InstanceCreated).To(BeFalse())
		Expect(secondCtx.State.InstanceID).To(Equal(pCtx.State.InstanceID))
		Expect(secondCtx.State.PublicIP).To(Equal(pCtx.State.PublicIP))
	})
})
