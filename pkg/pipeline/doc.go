// Package pipeline models the delivery pipeline definition
// (cloudbuild.yaml) and checks it for internal consistency.
//
// The pipeline builds the service image, pushes the commit-tagged image
// and deploys it to the managed runtime targets. The build and deploy
// semantics belong to the external tools the steps invoke; this package
// only verifies that the definition agrees with itself: what gets pushed
// was built, what gets deployed was pushed, the cache-warming pull cannot
// abort the pipeline, and the deploy targets are coherent.
package pipeline
