package internal_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/expense-insights/internal"
)

var _ = Describe("Context", func() {
	It("should carry the user id", func() {
		ctx := internal.ContextWithUserID(context.Background(), "user-1")

		Expect(internal.UserIDFromContext(ctx)).To(Equal("user-1"))
		Expect(internal.UserIDFromContext(context.Background())).To(BeEmpty())
	})

	It("should bound the context by the given timeout", func() {
		ctx, cancel := internal.WithTimeout(context.Background(), time.Second)
		defer cancel()

		deadline, ok := ctx.Deadline()
		Expect(ok).To(BeTrue())
		Expect(deadline).To(BeTemporally("~", time.Now().Add(time.Second), 100*time.Millisecond))
	})

	It("should add no deadline for a zero timeout", func() {
		ctx, cancel := internal.WithTimeout(context.Background(), 0)
		defer cancel()

		_, ok := ctx.Deadline()
		Expect(ok).To(BeFalse())
	})
})
