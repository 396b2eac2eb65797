package controller

import (
	"k8s.io/apimachinery/pkg/labels"
	"k8s.io/apimachinery/pkg/selection"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"

	hilbrokerv1alpha1 "github.com/hil-broker/broker/api/v1alpha1"
)

// MatchingActiveLeases selects leases that have not been marked ended, i.e.
// still occupy their bound exporter.
func MatchingActiveLeases() client.ListOption {
	// TODO: use field selector once KEP-4358 is stabilized
	// Reference: https://github.com/kubernetes/kubernetes/pull/122717
	requirement, err := labels.NewRequirement(
		string(hilbrokerv1alpha1.LeaseLabelEnded),
		selection.DoesNotExist,
		[]string{},
	)

	utilruntime.Must(err)

	return client.MatchingLabelsSelector{
		Selector: labels.Everything().Add(*requirement),
	}
}
