// Package authsvc - Test chuẩn hóa email và hạn mức theo gói đăng ký.
package authsvc

import (
	"testing"

	basemodels "social_manager/internal/api/base/models"
)

func TestNormalizeEmail(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"John@Example.COM", "john@example.com"},
		{"  user@mail.com  ", "user@mail.com"},
		{"already@lower.com", "already@lower.com"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := NormalizeEmail(tc.input); got != tc.want {
			t.Errorf("NormalizeEmail(%q): muốn %q, nhận được %q", tc.input, tc.want, got)
		}
	}
}

func TestPlanLimits_CoversAllPlans(t *testing.T) {
	plans := []basemodels.SubscriptionPlan{basemodels.PlanFree, basemodels.PlanPro, basemodels.PlanBusiness}
	for _, plan := range plans {
		limits, ok := planLimits[plan]
		if !ok {
			t.Errorf("Gói %q phải có hạn mức định nghĩa sẵn", plan)
			continue
		}
		if limits.ScheduledPosts <= 0 || limits.ConnectedAccounts <= 0 {
			t.Errorf("Hạn mức gói %q phải dương, nhận được %+v", plan, limits)
		}
	}
}

func TestPlanLimits_FreePlanValues(t *testing.T) {
	limits := planLimits[basemodels.PlanFree]
	if limits.ScheduledPosts != 10 {
		t.Errorf("Gói free phải giới hạn 10 bài hẹn giờ, nhận được %d", limits.ScheduledPosts)
	}
	if limits.ConnectedAccounts != 1 {
		t.Errorf("Gói free phải giới hạn 1 tài khoản liên kết, nhận được %d", limits.ConnectedAccounts)
	}
}

func TestPlanLimits_Increasing(t *testing.T) {
	free := planLimits[basemodels.PlanFree]
	pro := planLimits[basemodels.PlanPro]
	business := planLimits[basemodels.PlanBusiness]

	if pro.ScheduledPosts <= free.ScheduledPosts || business.ScheduledPosts <= pro.ScheduledPosts {
		t.Error("Hạn mức bài hẹn giờ phải tăng dần theo gói free < pro < business")
	}
	if pro.ConnectedAccounts <= free.ConnectedAccounts || business.ConnectedAccounts <= pro.ConnectedAccounts {
		t.Error("Hạn mức tài khoản liên kết phải tăng dần theo gói free < pro < business")
	}
}
