package admission

// InjectCAFromAnnotation tells the cert-manager CA injector which Certificate's
// CA to copy into the webhook clientConfig. The value is <namespace>/<name>.
const InjectCAFromAnnotation = "cert-manager.io/inject-ca-from"
