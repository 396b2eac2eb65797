package controller

import (
	"github.com/go-logr/logr"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	ctrl "sigs.k8s.io/controller-runtime"
)

// RequeueConflict turns an optimistic-concurrency conflict into a plain
// requeue instead of a logged error: the object changed under us and the
// next reconcile will see the new ResourceVersion.
func RequeueConflict(logger logr.Logger, result ctrl.Result, err error) (ctrl.Result, error) {
	if apierrors.IsConflict(err) {
		logger.V(1).Info("ignoring conflict error but requeuing the reconciliation request", "error", err)
		return ctrl.Result{Requeue: true}, nil
	}
	return result, err
}
